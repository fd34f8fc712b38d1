package context

import (
	"Agora/pkg/permission"
	"Agora/pkg/response"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			_ = c.Error(err)
			status, body := response.FromError(err)
			c.JSON(status, body)
		}
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return uuid.Nil, errors.New("user_id 不存在")
	}

	uid, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// OptionalUserID 匿名访问返回 nil
func OptionalUserID(c *gin.Context) *uuid.UUID {
	uid, err := GetUserID(c)
	if err != nil {
		return nil
	}
	return &uid
}

func GetRole(c *gin.Context) permission.Role {
	v, ok := c.Get(CtxRole)
	if !ok {
		return permission.RoleViewer
	}
	role, ok := v.(permission.Role)
	if !ok {
		return permission.RoleViewer
	}
	return role
}
