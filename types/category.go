package types

import (
	"time"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=500"`
	Color       string  `json:"color" binding:"required,hexcolor"`
	Icon        *string `json:"icon" binding:"omitempty,max=64"`
	SortOrder   int     `json:"sort_order"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
	Icon        *string `json:"icon" binding:"omitempty,max=64"`
	SortOrder   *int    `json:"sort_order"`
}

// CategoryBrief 嵌在主题里的分区信息
type CategoryBrief struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Icon  *string   `json:"icon,omitempty"`
}

// CategoryWithStats 分区列表项，带最新主题
type CategoryWithStats struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	Icon        *string    `json:"icon,omitempty"`
	SortOrder   int        `json:"sort_order"`
	TopicsCount int64      `json:"topics_count"`
	PostsCount  int64      `json:"posts_count"`
	LastPostAt  *time.Time `json:"last_post_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	LatestTopic *TopicWithDetails `json:"latest_topic,omitempty"`
}
