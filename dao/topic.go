package dao

import (
	"Agora/models"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Topic struct {
	Repo[models.Topic]
}

func NewTopic(db *gorm.DB) *Topic {
	return &Topic{Repo: NewRepo[models.Topic](db)}
}

func (d *Topic) WithTx(tx *gorm.DB) *Topic {
	return &Topic{Repo: d.Repo.WithDB(tx)}
}

// ordered 列表排序：置顶优先，最后回复时间倒序（从未回复的排在后面），再按创建时间倒序
func ordered(db *gorm.DB) *gorm.DB {
	return db.
		Order("is_pinned DESC").
		Order("last_reply_at IS NULL").
		Order("last_reply_at DESC").
		Order("created_at DESC").
		Order("id ASC")
}

// List categoryID 为空时查全部
func (d *Topic) List(ctx context.Context, categoryID *uuid.UUID, limit, offset int) ([]*models.Topic, error) {
	var topics []*models.Topic
	q := d.Db.WithContext(ctx).Model(&models.Topic{})
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	err := ordered(q).Limit(limit).Offset(offset).Find(&topics).Error
	return topics, err
}

func (d *Topic) FindBySlug(ctx context.Context, slug string) (*models.Topic, error) {
	return d.FindByWhere(ctx, "slug = ?", slug)
}

func (d *Topic) SlugExists(ctx context.Context, slug string) (bool, error) {
	return d.IsExist(ctx, "slug = ?", slug)
}

// LatestPerCategory 每个分区最新创建的一个主题，一次窗口查询
func (d *Topic) LatestPerCategory(ctx context.Context, categoryIDs []uuid.UUID) (map[uuid.UUID]*models.Topic, error) {
	result := make(map[uuid.UUID]*models.Topic, len(categoryIDs))
	if len(categoryIDs) == 0 {
		return result, nil
	}

	ranked := d.Db.WithContext(ctx).
		Model(&models.Topic{}).
		Select("topics.*, ROW_NUMBER() OVER (PARTITION BY category_id ORDER BY created_at DESC, id DESC) AS rn").
		Where("category_id IN ?", categoryIDs)

	var topics []*models.Topic
	err := d.Db.WithContext(ctx).
		Table("(?) AS ranked", ranked).
		Where("rn = ?", 1).
		Find(&topics).Error
	if err != nil {
		return nil, err
	}
	for _, t := range topics {
		result[t.CategoryID] = t
	}
	return result, nil
}

// IncrViews 原始点击计数，不做去重
func (d *Topic) IncrViews(ctx context.Context, id uuid.UUID) error {
	return d.Model(ctx).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// TouchLastReply 新回帖后更新主题的回复数和最后活跃信息
func (d *Topic) TouchLastReply(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	return d.Model(ctx).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"replies_count":      gorm.Expr("replies_count + ?", 1),
			"last_reply_at":      at,
			"last_reply_user_id": userID,
			"updated_at":         at,
		}).Error
}

// Update 只允许修改标题和状态位，slug 不变
func (d *Topic) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	delete(updates, "slug")
	return d.Model(ctx).Where("id = ?", id).UpdateColumns(updates).Error
}
