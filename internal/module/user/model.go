package user

import (
	"time"

	"github.com/google/uuid"
)

// UserModel 用户表，由账号体系维护，论坛侧只读
type UserModel struct {
	ID        uuid.UUID `gorm:"column:id;type:char(36);primaryKey"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Role      string    `gorm:"column:role;type:varchar(16);not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
