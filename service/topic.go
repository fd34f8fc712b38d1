package service

import (
	"Agora/config"
	"Agora/dao"
	"Agora/internal/module/user"
	"Agora/models"
	"Agora/pkg/clock"
	"Agora/pkg/errorx"
	"Agora/pkg/log"
	"Agora/pkg/permission"
	"Agora/types"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// slug 唯一索引冲突时的最大重试次数
const maxSlugAttempts = 3

var _ ITopicService = (*TopicService)(nil)

type ITopicService interface {
	CreateTopic(ctx context.Context, req *types.CreateTopicRequest, authorID uuid.UUID) (*models.Topic, error)
	GetTopicBySlug(ctx context.Context, slug string) (*types.TopicWithDetails, error)
	ListTopics(ctx context.Context, categoryID *uuid.UUID, limit, offset int) ([]*types.TopicWithDetails, error)
	ListTopicsPage(ctx context.Context, categoryID *uuid.UUID, q types.PageQuery) (*types.PageResult[*types.TopicWithDetails], error)
	UpdateTopic(ctx context.Context, id uuid.UUID, req *types.UpdateTopicRequest, actor types.Actor) (*types.TopicWithDetails, error)
	TopicPage(ctx context.Context, slug string, viewer *uuid.UUID, ip string, q types.PageQuery) (*types.TopicPage, error)
}

type TopicService struct {
	Config       *config.Config
	CategoryDAO  *dao.Category
	TopicDAO     *dao.Topic
	ReplyDAO     *dao.Reply
	Slugs        *SlugGenerator
	Users        user.Service
	ViewService  IViewService
	ReplyService IReplyService
	Clock        clock.Clock
}

// CreateTopic 主题和首条回帖在同一个事务里写入，同时更新分区计数
func (s *TopicService) CreateTopic(ctx context.Context, req *types.CreateTopicRequest, authorID uuid.UUID) (*models.Topic, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	title, err := requireText("title", req.Title)
	if err != nil {
		return nil, err
	}
	if _, err := requireText("content", req.Content); err != nil {
		return nil, err
	}

	category, err := s.CategoryDAO.FindById(ctx, req.CategoryID)
	if err != nil {
		return nil, storageErr("category.find", err, zap.String("category_id", req.CategoryID.String()))
	}
	if category == nil {
		return nil, errorx.NotFound("category")
	}

	for attempt := 1; ; attempt++ {
		slug, err := s.Slugs.Generate(ctx, title)
		if err != nil {
			return nil, storageErr("topic.slug", err, zap.String("title", title))
		}

		topic, err := s.insertTopic(ctx, category.ID, title, slug, req.Content, authorID)
		if err == nil {
			postsCreated.WithLabelValues("topic").Inc()
			log.L.Info("topic created", zap.String("topic_id", topic.ID.String()), zap.String("slug", slug))
			return topic, nil
		}
		// 并发创建同名主题，slug 被别人抢先写入
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < maxSlugAttempts && ctx.Err() == nil {
			log.L.Warn("slug conflict, regenerating", zap.String("slug", slug), zap.Int("attempt", attempt))
			continue
		}
		return nil, storageErr("topic.create", err, zap.String("slug", slug))
	}
}

func (s *TopicService) insertTopic(ctx context.Context, categoryID uuid.UUID, title, slug, content string, authorID uuid.UUID) (*models.Topic, error) {
	now := s.Clock.Now()
	topic := &models.Topic{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Title:      title,
		Slug:       slug,
		UserID:     authorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	reply := &models.Reply{
		ID:        uuid.New(),
		TopicID:   topic.ID,
		UserID:    authorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.TopicDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.TopicDAO.WithTx(tx).Create(ctx, topic); err != nil {
			return err
		}
		if err := s.ReplyDAO.WithTx(tx).Create(ctx, reply); err != nil {
			return err
		}
		return s.CategoryDAO.WithTx(tx).IncrStats(ctx, categoryID, 1, 1, &now)
	})
	if err != nil {
		return nil, err
	}
	return topic, nil
}

// GetTopicBySlug 不存在返回 nil, nil
func (s *TopicService) GetTopicBySlug(ctx context.Context, slug string) (*types.TopicWithDetails, error) {
	topic, err := s.TopicDAO.FindBySlug(ctx, slug)
	if err != nil {
		return nil, storageErr("topic.find_by_slug", err, zap.String("slug", slug))
	}
	if topic == nil {
		return nil, nil
	}
	items, err := s.withDetails(ctx, []*models.Topic{topic})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

func (s *TopicService) ListTopics(ctx context.Context, categoryID *uuid.UUID, limit, offset int) ([]*types.TopicWithDetails, error) {
	if limit <= 0 {
		limit = config.DefaultTopicPageSize
	}
	if offset < 0 {
		offset = 0
	}
	topics, err := s.TopicDAO.List(ctx, categoryID, limit, offset)
	if err != nil {
		return nil, storageErr("topic.list", err)
	}
	return s.withDetails(ctx, topics)
}

func (s *TopicService) ListTopicsPage(ctx context.Context, categoryID *uuid.UUID, q types.PageQuery) (*types.PageResult[*types.TopicWithDetails], error) {
	q = q.Normalize(s.Config.Forum.TopicPageSize, s.Config.Forum.MaxPageSize)
	items, err := s.ListTopics(ctx, categoryID, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	return types.NewPageResult(items, q), nil
}

// UpdateTopic 置顶/锁定需要管理权限，改标题需要作者本人或管理权限
func (s *TopicService) UpdateTopic(ctx context.Context, id uuid.UUID, req *types.UpdateTopicRequest, actor types.Actor) (*types.TopicWithDetails, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	topic, err := s.TopicDAO.FindById(ctx, id)
	if err != nil {
		return nil, storageErr("topic.find", err, zap.String("topic_id", id.String()))
	}
	if topic == nil {
		return nil, errorx.NotFound("topic")
	}

	moderator := actor.Can(permission.TopicModerate)
	updates := map[string]any{}
	if req.Title != nil {
		if topic.UserID != actor.ID && !moderator {
			return nil, errorx.ErrForbidden
		}
		title, err := requireText("title", *req.Title)
		if err != nil {
			return nil, err
		}
		updates["title"] = title
	}
	if req.IsPinned != nil || req.IsLocked != nil {
		if !moderator {
			return nil, errorx.ErrForbidden
		}
		if req.IsPinned != nil {
			updates["is_pinned"] = *req.IsPinned
		}
		if req.IsLocked != nil {
			updates["is_locked"] = *req.IsLocked
		}
	}
	if len(updates) > 0 {
		updates["updated_at"] = s.Clock.Now()
		if err := s.TopicDAO.Update(ctx, id, updates); err != nil {
			return nil, storageErr("topic.update", err, zap.String("topic_id", id.String()))
		}
	}

	updated, err := s.TopicDAO.FindById(ctx, id)
	if err != nil {
		return nil, storageErr("topic.find", err, zap.String("topic_id", id.String()))
	}
	items, err := s.withDetails(ctx, []*models.Topic{updated})
	if err != nil {
		return nil, err
	}
	return items[0], nil
}

// TopicPage 详情页：记录浏览和拉取回帖并发执行，浏览记录失败不影响页面
func (s *TopicService) TopicPage(ctx context.Context, slug string, viewer *uuid.UUID, ip string, q types.PageQuery) (*types.TopicPage, error) {
	topic, err := s.GetTopicBySlug(ctx, slug)
	if err != nil || topic == nil {
		return nil, err
	}
	q = q.Normalize(s.Config.Forum.ReplyPageSize, s.Config.Forum.MaxPageSize)

	var replies []*types.ReplyWithDetails
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		if _, err := s.ViewService.RecordView(ctx, topic.ID, viewer, ip); err != nil {
			log.L.Warn("record view failed", zap.String("topic_id", topic.ID.String()), zap.Error(err))
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		replies, err = s.ReplyService.ListReplies(ctx, topic.ID, q.Limit, q.Offset())
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	page := types.NewPageResult(replies, q)
	return &types.TopicPage{
		Topic:   topic,
		Replies: page.Items,
		Page:    page.Page,
		Limit:   page.Limit,
		HasMore: page.HasMore,
	}, nil
}

// withDetails 批量补全分区和用户信息
func (s *TopicService) withDetails(ctx context.Context, topics []*models.Topic) ([]*types.TopicWithDetails, error) {
	out := make([]*types.TopicWithDetails, 0, len(topics))
	if len(topics) == 0 {
		return out, nil
	}

	catIDs := make([]uuid.UUID, 0, len(topics))
	seen := make(map[uuid.UUID]struct{}, len(topics))
	for _, t := range topics {
		if _, ok := seen[t.CategoryID]; !ok {
			seen[t.CategoryID] = struct{}{}
			catIDs = append(catIDs, t.CategoryID)
		}
	}
	categories, err := s.CategoryDAO.FindByIds(ctx, catIDs)
	if err != nil {
		return nil, storageErr("category.find_by_ids", err)
	}
	cats := make(map[uuid.UUID]*models.Category, len(categories))
	for _, c := range categories {
		cats[c.ID] = c
	}

	users, err := s.Users.BatchGetUserInfo(ctx, topicUserIDs(topics))
	if err != nil {
		return nil, storageErr("user.batch_get", err)
	}

	for _, t := range topics {
		out = append(out, topicDetails(t, cats, users))
	}
	return out, nil
}
