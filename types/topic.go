package types

import (
	"time"

	"github.com/google/uuid"
)

// CreateTopicRequest 发主题，content 同时作为首条回帖
type CreateTopicRequest struct {
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
	Title      string    `json:"title" binding:"required,max=255"`
	Content    string    `json:"content" binding:"required,max=65535"`
}

// UpdateTopicRequest 只能改标题和状态位
type UpdateTopicRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=1,max=255"`
	IsPinned *bool   `json:"is_pinned"`
	IsLocked *bool   `json:"is_locked"`
}

// TopicWithDetails 列表/详情页的主题
type TopicWithDetails struct {
	ID              uuid.UUID  `json:"id"`
	CategoryID      uuid.UUID  `json:"category_id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	UserID          uuid.UUID  `json:"user_id"`
	Views           int64      `json:"views"`
	RepliesCount    int64      `json:"replies_count"`
	IsPinned        bool       `json:"is_pinned"`
	IsLocked        bool       `json:"is_locked"`
	IsSolved        bool       `json:"is_solved"`
	LastReplyAt     *time.Time `json:"last_reply_at,omitempty"`
	LastReplyUserID *uuid.UUID `json:"last_reply_user_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Category      *CategoryBrief `json:"category,omitempty"`
	Author        *UserInfo      `json:"author,omitempty"`
	LastReplyUser *UserInfo      `json:"last_reply_user,omitempty"`
}

// TopicPage 主题详情页：主题 + 一页回帖
type TopicPage struct {
	Topic   *TopicWithDetails   `json:"topic"`
	Replies []*ReplyWithDetails `json:"replies"`
	Page    int                 `json:"page"`
	Limit   int                 `json:"limit"`
	HasMore bool                `json:"has_more"`
}
