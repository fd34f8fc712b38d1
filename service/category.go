package service

import (
	"Agora/dao"
	"Agora/internal/module/user"
	"Agora/models"
	"Agora/pkg/clock"
	"Agora/pkg/errorx"
	"Agora/pkg/log"
	"Agora/pkg/permission"
	"Agora/types"
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	ListCategories(ctx context.Context) ([]*types.CategoryWithStats, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	CreateCategory(ctx context.Context, req *types.CreateCategoryRequest, actor types.Actor) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *types.UpdateCategoryRequest, actor types.Actor) (*models.Category, error)
}

type CategoryService struct {
	CategoryDAO *dao.Category
	TopicDAO    *dao.Topic
	Users       user.Service
	Clock       clock.Clock
}

// ListCategories 按 sort_order, name 排序，每个分区带上最新创建的主题。
// 最新主题用一次窗口查询取出，作者信息一次批量取。
func (s *CategoryService) ListCategories(ctx context.Context) ([]*types.CategoryWithStats, error) {
	categories, err := s.CategoryDAO.List(ctx)
	if err != nil {
		return nil, storageErr("category.list", err)
	}

	ids := make([]uuid.UUID, 0, len(categories))
	cats := make(map[uuid.UUID]*models.Category, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
		cats[c.ID] = c
	}

	latest, err := s.TopicDAO.LatestPerCategory(ctx, ids)
	if err != nil {
		return nil, storageErr("topic.latest_per_category", err)
	}
	topics := make([]*models.Topic, 0, len(latest))
	for _, t := range latest {
		topics = append(topics, t)
	}
	users, err := s.Users.BatchGetUserInfo(ctx, topicUserIDs(topics))
	if err != nil {
		return nil, storageErr("user.batch_get", err)
	}

	out := make([]*types.CategoryWithStats, 0, len(categories))
	for _, c := range categories {
		item := &types.CategoryWithStats{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Color:       c.Color,
			Icon:        c.Icon,
			SortOrder:   c.SortOrder,
			TopicsCount: c.TopicsCount,
			PostsCount:  c.PostsCount,
			LastPostAt:  c.LastPostAt,
			CreatedAt:   c.CreatedAt,
		}
		if t, ok := latest[c.ID]; ok {
			item.LatestTopic = topicDetails(t, cats, users)
		}
		out = append(out, item)
	}
	return out, nil
}

// GetCategory 不存在返回 nil, nil
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c, err := s.CategoryDAO.FindById(ctx, id)
	if err != nil {
		return nil, storageErr("category.find", err, zap.String("category_id", id.String()))
	}
	return c, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *types.CreateCategoryRequest, actor types.Actor) (*models.Category, error) {
	if !actor.Can(permission.CategoryCreate) {
		return nil, errorx.ErrForbidden
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	name, err := requireText("name", req.Name)
	if err != nil {
		return nil, err
	}

	c := &models.Category{
		ID:          uuid.New(),
		Name:        name,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
		CreatedAt:   s.Clock.Now(),
	}
	if err := s.CategoryDAO.Create(ctx, c); err != nil {
		return nil, storageErr("category.create", err, zap.String("name", name))
	}
	log.L.Info("category created", zap.String("category_id", c.ID.String()), zap.String("name", name))
	return c, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *types.UpdateCategoryRequest, actor types.Actor) (*models.Category, error) {
	if !actor.Can(permission.CategoryUpdate) {
		return nil, errorx.ErrForbidden
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	existing, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errorx.NotFound("category")
	}

	updates := map[string]any{}
	if req.Name != nil {
		name, err := requireText("name", *req.Name)
		if err != nil {
			return nil, err
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if err := s.CategoryDAO.Update(ctx, id, updates); err != nil {
		return nil, storageErr("category.update", err, zap.String("category_id", id.String()))
	}
	return s.GetCategory(ctx, id)
}
