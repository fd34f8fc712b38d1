package config

const (
	DefaultTopicPageSize = 20
	DefaultReplyPageSize = 20
	DefaultPostPageSize  = 10
	DefaultMaxPageSize   = 100
)

// Forum 论坛分页参数
type Forum struct {
	TopicPageSize int `json:"topic_page_size" yaml:"topic_page_size"`
	ReplyPageSize int `json:"reply_page_size" yaml:"reply_page_size"`
	MaxPageSize   int `json:"max_page_size" yaml:"max_page_size"`
}

func (f *Forum) applyDefaults() {
	if f.TopicPageSize <= 0 {
		f.TopicPageSize = DefaultTopicPageSize
	}
	if f.ReplyPageSize <= 0 {
		f.ReplyPageSize = DefaultReplyPageSize
	}
	if f.MaxPageSize <= 0 {
		f.MaxPageSize = DefaultMaxPageSize
	}
}
