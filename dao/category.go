package dao

import (
	"Agora/models"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{Repo: NewRepo[models.Category](db)}
}

func (d *Category) WithTx(tx *gorm.DB) *Category {
	return &Category{Repo: d.Repo.WithDB(tx)}
}

// List 按 sort_order, name 排序
func (d *Category) List(ctx context.Context) ([]*models.Category, error) {
	var items []*models.Category
	err := d.Db.WithContext(ctx).
		Order("sort_order ASC").
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (d *Category) Update(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return d.Model(ctx).Where("id = ?", id).Updates(updates).Error
}

// IncrStats 调整计数，结果不小于 0；lastPostAt 非空时一并更新
func (d *Category) IncrStats(ctx context.Context, id uuid.UUID, topics, posts int64, lastPostAt *time.Time) error {
	updates := map[string]any{
		"topics_count": clampedIncr("topics_count", topics),
		"posts_count":  clampedIncr("posts_count", posts),
	}
	if lastPostAt != nil {
		updates["last_post_at"] = *lastPostAt
	}
	return d.Model(ctx).Where("id = ?", id).UpdateColumns(updates).Error
}

func clampedIncr(column string, delta int64) any {
	return gorm.Expr("CASE WHEN "+column+" + ? < 0 THEN 0 ELSE "+column+" + ? END", delta, delta)
}
