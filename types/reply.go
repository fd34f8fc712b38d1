package types

import (
	"time"

	"github.com/google/uuid"
)

type CreateReplyRequest struct {
	Content   string     `json:"content" binding:"required,max=65535"`
	ReplyToID *uuid.UUID `json:"reply_to_id"`
}

type ReplyWithDetails struct {
	ID         uuid.UUID  `json:"id"`
	TopicID    uuid.UUID  `json:"topic_id"`
	UserID     uuid.UUID  `json:"user_id"`
	Content    string     `json:"content"`
	IsSolution bool       `json:"is_solution"`
	LikesCount int64      `json:"likes_count"`
	ReplyToID  *uuid.UUID `json:"reply_to_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Author      *UserInfo `json:"author,omitempty"`
	ReplyToUser *UserInfo `json:"reply_to_user,omitempty"`
}
