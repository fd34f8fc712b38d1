package models

import (
	"time"

	"github.com/google/uuid"
)

// Category 论坛分区
type Category struct {
	ID          uuid.UUID  `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Name        string     `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string     `gorm:"column:description;type:varchar(500);not null;default:''" json:"description"`
	Color       string     `gorm:"column:color;type:varchar(16);not null" json:"color"`
	Icon        *string    `gorm:"column:icon;type:varchar(64)" json:"icon,omitempty"`
	SortOrder   int        `gorm:"column:sort_order;not null;default:0;index:idx_categories_sort" json:"sort_order"` // 越小越靠前
	TopicsCount int64      `gorm:"column:topics_count;not null;default:0" json:"topics_count"`
	PostsCount  int64      `gorm:"column:posts_count;not null;default:0" json:"posts_count"`
	LastPostAt  *time.Time `gorm:"column:last_post_at" json:"last_post_at,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
