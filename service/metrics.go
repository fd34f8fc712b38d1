package service

import "github.com/prometheus/client_golang/prometheus"

var (
	topicViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agora_topic_views_total",
			Help: "Topic views recorded, labelled by whether the viewer triple was new",
		},
		[]string{"result"},
	)

	postsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agora_posts_created_total",
			Help: "Topics and replies created",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(topicViews)
	prometheus.MustRegister(postsCreated)
}
