package user

import (
	"Agora/pkg/context"
	"Agora/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler 用户模块的 HTTP 处理器
type Handler struct {
	svc Service
}

// NewHandler 构造函数
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRouter(r gin.IRouter) {
	users := r.Group("/v1/users")
	users.GET("/:id", context.Wrap(h.GetUser))
}

func (h *Handler) GetUser(c *gin.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的用户ID")
	}
	info, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		return err
	}
	if info == nil {
		return response.NewError(http.StatusNotFound, "用户不存在")
	}
	response.Success(c, info)
	return nil
}
