package handler

import (
	"Agora/pkg/context"
	"Agora/pkg/response"
	"Agora/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func actorFrom(c *gin.Context) (types.Actor, error) {
	uid, err := context.GetUserID(c)
	if err != nil {
		return types.Actor{}, response.NewError(http.StatusUnauthorized, "未登录")
	}
	return types.Actor{ID: uid, Role: context.GetRole(c)}, nil
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, response.NewError(http.StatusBadRequest, "无效的ID: "+name)
	}
	return id, nil
}

func pageQuery(c *gin.Context) (types.PageQuery, error) {
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, response.NewError(http.StatusBadRequest, "分页参数错误")
	}
	return q, nil
}
