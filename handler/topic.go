package handler

import (
	"Agora/config"
	"Agora/middleware"
	"Agora/pkg/context"
	"Agora/pkg/permission"
	"Agora/pkg/response"
	"Agora/service"
	"Agora/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TopicHandler struct {
	Config       *config.Config
	TopicService service.ITopicService
}

func (th *TopicHandler) RegisterRouter(r gin.IRouter) {
	secret := []byte(th.Config.Jwt.Secret)
	topics := r.Group("/v1/topics")
	topics.GET("", context.Wrap(th.List))
	topics.POST("", middleware.Auth(secret), context.Wrap(th.Create))
	// GET 用 slug，其余用 id
	topics.GET("/:topic", middleware.OptionalAuth(secret), context.Wrap(th.Show))
	topics.PATCH("/:topic", middleware.Auth(secret), context.Wrap(th.Update))
}

// List ?category=<id>&page=&limit=
func (th *TopicHandler) List(c *gin.Context) error {
	q, err := pageQuery(c)
	if err != nil {
		return err
	}
	var categoryID *uuid.UUID
	if raw := c.Query("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.NewError(http.StatusBadRequest, "无效的分区ID")
		}
		categoryID = &id
	}
	result, err := th.TopicService.ListTopicsPage(c.Request.Context(), categoryID, q)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (th *TopicHandler) Create(c *gin.Context) error {
	var req types.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if !actor.Can(permission.TopicCreate) {
		return response.NewError(http.StatusForbidden, "没有权限")
	}
	topic, err := th.TopicService.CreateTopic(c.Request.Context(), &req, actor.ID)
	if err != nil {
		return err
	}
	response.Created(c, topic)
	return nil
}

// Show 主题详情 + 第一页回帖，同时记录一次浏览
func (th *TopicHandler) Show(c *gin.Context) error {
	q, err := pageQuery(c)
	if err != nil {
		return err
	}
	page, err := th.TopicService.TopicPage(c.Request.Context(), c.Param("topic"), context.OptionalUserID(c), c.ClientIP(), q)
	if err != nil {
		return err
	}
	if page == nil {
		return response.NewError(http.StatusNotFound, "主题不存在")
	}
	response.Success(c, page)
	return nil
}

func (th *TopicHandler) Update(c *gin.Context) error {
	id, err := uuidParam(c, "topic")
	if err != nil {
		return err
	}
	var req types.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	topic, err := th.TopicService.UpdateTopic(c.Request.Context(), id, &req, actor)
	if err != nil {
		return err
	}
	response.Success(c, topic)
	return nil
}
