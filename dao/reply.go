package dao

import (
	"Agora/models"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reply struct {
	Repo[models.Reply]
}

func NewReply(db *gorm.DB) *Reply {
	return &Reply{Repo: NewRepo[models.Reply](db)}
}

func (d *Reply) WithTx(tx *gorm.DB) *Reply {
	return &Reply{Repo: d.Repo.WithDB(tx)}
}

// ListByTopic 按时间正序
func (d *Reply) ListByTopic(ctx context.Context, topicID uuid.UUID, limit, offset int) ([]*models.Reply, error) {
	var replies []*models.Reply
	err := d.Db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&replies).Error
	return replies, err
}

func (d *Reply) CountByTopic(ctx context.Context, topicID uuid.UUID) (int64, error) {
	return d.FindCount(ctx, "topic_id = ?", topicID)
}

// MarkSolution 同一主题下只保留一个解决方案
func (d *Reply) MarkSolution(ctx context.Context, topicID, replyID uuid.UUID, at time.Time) error {
	db := d.Db.WithContext(ctx)
	err := db.Model(&models.Reply{}).
		Where("topic_id = ? AND is_solution = ?", topicID, true).
		UpdateColumns(map[string]any{"is_solution": false, "updated_at": at}).Error
	if err != nil {
		return err
	}
	return db.Model(&models.Reply{}).
		Where("id = ?", replyID).
		UpdateColumns(map[string]any{"is_solution": true, "updated_at": at}).Error
}
