package models

import (
	"time"

	"github.com/google/uuid"
)

// Reply 回帖，主题的首帖也是一条 Reply
type Reply struct {
	ID         uuid.UUID  `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	TopicID    uuid.UUID  `gorm:"column:topic_id;type:char(36);not null;index:idx_replies_topic_created,priority:1" json:"topic_id"`
	UserID     uuid.UUID  `gorm:"column:user_id;type:char(36);not null;index" json:"user_id"`
	Content    string     `gorm:"column:content;type:text;not null" json:"content"`
	IsSolution bool       `gorm:"column:is_solution;not null;default:false" json:"is_solution"`
	LikesCount int64      `gorm:"column:likes_count;not null;default:0" json:"likes_count"`
	ReplyToID  *uuid.UUID `gorm:"column:reply_to_id;type:char(36)" json:"reply_to_id,omitempty"` // 只指向同一主题下的回帖，不做嵌套
	CreatedAt  time.Time  `gorm:"column:created_at;not null;index:idx_replies_topic_created,priority:2" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Reply) TableName() string {
	return "replies"
}
