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

type CategoryHandler struct {
	Config          *config.Config
	CategoryService service.ICategoryService
}

func (h *CategoryHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	categories := r.Group("/v1/categories")
	categories.GET("", context.Wrap(h.List))
	categories.POST("", authorize, context.Wrap(h.Create))
	categories.GET("/:id", context.Wrap(h.Get))
	categories.PUT("/:id", authorize, context.Wrap(h.Update))
}

// List 分区列表，带最新主题
func (h *CategoryHandler) List(c *gin.Context) error {
	items, err := h.CategoryService.ListCategories(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *CategoryHandler) Get(c *gin.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	category, err := h.CategoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		return err
	}
	if category == nil {
		return response.NewError(http.StatusNotFound, "分区不存在")
	}
	response.Success(c, category)
	return nil
}

func (h *CategoryHandler) Create(c *gin.Context) error {
	var req types.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	category, err := h.CategoryService.CreateCategory(c.Request.Context(), &req, actor)
	if err != nil {
		return err
	}
	response.Created(c, category)
	return nil
}

func (h *CategoryHandler) Update(c *gin.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	var req types.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	category, err := h.CategoryService.UpdateCategory(c.Request.Context(), id, &req, actor)
	if err != nil {
		return err
	}
	response.Success(c, category)
	return nil
}
