package handler

import (
	"Agora/config"
	"Agora/middleware"
	"Agora/pkg/context"
	"Agora/pkg/response"
	"Agora/service"
	"Agora/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReplyHandler struct {
	Config       *config.Config
	ReplyService service.IReplyService
}

func (rh *ReplyHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(rh.Config.Jwt.Secret))
	r.GET("/v1/topics/:topic/replies", context.Wrap(rh.List))
	r.POST("/v1/topics/:topic/replies", authorize, context.Wrap(rh.Create))
	r.POST("/v1/replies/:id/solution", authorize, context.Wrap(rh.MarkSolution))
}

func (rh *ReplyHandler) List(c *gin.Context) error {
	topicID, err := uuidParam(c, "topic")
	if err != nil {
		return err
	}
	q, err := pageQuery(c)
	if err != nil {
		return err
	}
	result, err := rh.ReplyService.ListRepliesPage(c.Request.Context(), topicID, q)
	if err != nil {
		return err
	}
	response.Success(c, result)
	return nil
}

func (rh *ReplyHandler) Create(c *gin.Context) error {
	topicID, err := uuidParam(c, "topic")
	if err != nil {
		return err
	}
	var req types.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	reply, err := rh.ReplyService.CreateReply(c.Request.Context(), topicID, &req, actor)
	if err != nil {
		return err
	}
	response.Created(c, reply)
	return nil
}

// MarkSolution 采纳为解决方案
func (rh *ReplyHandler) MarkSolution(c *gin.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	if err := rh.ReplyService.MarkSolution(c.Request.Context(), id, actor); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
