package models

import (
	"time"

	"github.com/google/uuid"
)

// Topic 主题帖
type Topic struct {
	ID         uuid.UUID `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	CategoryID uuid.UUID `gorm:"column:category_id;type:char(36);not null;index:idx_topics_category_created,priority:1" json:"category_id"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Slug       string    `gorm:"column:slug;type:varchar(255);not null;uniqueIndex:uk_topics_slug" json:"slug"` // 创建后不可修改
	UserID     uuid.UUID `gorm:"column:user_id;type:char(36);not null;index" json:"user_id"`

	// 统计
	Views        int64 `gorm:"column:views;not null;default:0" json:"views"`
	RepliesCount int64 `gorm:"column:replies_count;not null;default:0" json:"replies_count"`

	// 状态
	IsPinned bool `gorm:"column:is_pinned;not null;default:false" json:"is_pinned"`
	IsLocked bool `gorm:"column:is_locked;not null;default:false" json:"is_locked"`
	IsSolved bool `gorm:"column:is_solved;not null;default:false" json:"is_solved"`

	// 最后活跃
	LastReplyAt     *time.Time `gorm:"column:last_reply_at" json:"last_reply_at,omitempty"`
	LastReplyUserID *uuid.UUID `gorm:"column:last_reply_user_id;type:char(36)" json:"last_reply_user_id,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_topics_category_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Topic) TableName() string {
	return "topics"
}

// TopicView 浏览记录，(topic_id, viewer_key, ip_address) 唯一
type TopicView struct {
	ID        uuid.UUID  `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	TopicID   uuid.UUID  `gorm:"column:topic_id;type:char(36);not null;uniqueIndex:uk_topic_views_dedup,priority:1" json:"topic_id"`
	UserID    *uuid.UUID `gorm:"column:user_id;type:char(36)" json:"user_id,omitempty"`
	ViewerKey string     `gorm:"column:viewer_key;type:varchar(36);not null;uniqueIndex:uk_topic_views_dedup,priority:2" json:"-"` // 匿名时为全零 UUID
	IPAddress string     `gorm:"column:ip_address;type:varchar(45);not null;uniqueIndex:uk_topic_views_dedup,priority:3" json:"ip_address"`
	ViewedAt  time.Time  `gorm:"column:viewed_at;not null" json:"viewed_at"`
}

func (TopicView) TableName() string {
	return "topic_views"
}

// ViewerKey 匿名访问统一归到 uuid.Nil
func ViewerKey(userID *uuid.UUID) string {
	if userID == nil {
		return uuid.Nil.String()
	}
	return userID.String()
}
