package dao

import (
	"Agora/models"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopicView struct {
	Repo[models.TopicView]
}

func NewTopicView(db *gorm.DB) *TopicView {
	return &TopicView{Repo: NewRepo[models.TopicView](db)}
}

// Insert 命中去重键时什么也不做，返回 false
func (d *TopicView) Insert(ctx context.Context, view *models.TopicView) (bool, error) {
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "topic_id"}, {Name: "viewer_key"}, {Name: "ip_address"}},
			DoNothing: true,
		}).
		Create(view)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *TopicView) CountByTopic(ctx context.Context, topicID uuid.UUID) (int64, error) {
	return d.FindCount(ctx, "topic_id = ?", topicID)
}
