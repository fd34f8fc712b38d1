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

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IReplyService = (*ReplyService)(nil)

type IReplyService interface {
	ListReplies(ctx context.Context, topicID uuid.UUID, limit, offset int) ([]*types.ReplyWithDetails, error)
	ListRepliesPage(ctx context.Context, topicID uuid.UUID, q types.PageQuery) (*types.PageResult[*types.ReplyWithDetails], error)
	CreateReply(ctx context.Context, topicID uuid.UUID, req *types.CreateReplyRequest, actor types.Actor) (*models.Reply, error)
	MarkSolution(ctx context.Context, replyID uuid.UUID, actor types.Actor) error
}

type ReplyService struct {
	Config      *config.Config
	CategoryDAO *dao.Category
	TopicDAO    *dao.Topic
	ReplyDAO    *dao.Reply
	Users       user.Service
	Clock       clock.Clock
}

// ListReplies 按发布时间正序
func (s *ReplyService) ListReplies(ctx context.Context, topicID uuid.UUID, limit, offset int) ([]*types.ReplyWithDetails, error) {
	if limit <= 0 {
		limit = config.DefaultReplyPageSize
	}
	if offset < 0 {
		offset = 0
	}
	replies, err := s.ReplyDAO.ListByTopic(ctx, topicID, limit, offset)
	if err != nil {
		return nil, storageErr("reply.list", err, zap.String("topic_id", topicID.String()))
	}
	return s.withDetails(ctx, replies)
}

func (s *ReplyService) ListRepliesPage(ctx context.Context, topicID uuid.UUID, q types.PageQuery) (*types.PageResult[*types.ReplyWithDetails], error) {
	q = q.Normalize(s.Config.Forum.ReplyPageSize, s.Config.Forum.MaxPageSize)
	items, err := s.ListReplies(ctx, topicID, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	return types.NewPageResult(items, q), nil
}

// CreateReply 写回帖，同时更新主题的回复数/最后回复信息和分区的帖子数
func (s *ReplyService) CreateReply(ctx context.Context, topicID uuid.UUID, req *types.CreateReplyRequest, actor types.Actor) (*models.Reply, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := requireText("content", req.Content); err != nil {
		return nil, err
	}
	if !actor.Can(permission.ReplyCreate) {
		return nil, errorx.ErrForbidden
	}

	topic, err := s.TopicDAO.FindById(ctx, topicID)
	if err != nil {
		return nil, storageErr("topic.find", err, zap.String("topic_id", topicID.String()))
	}
	if topic == nil {
		return nil, errorx.NotFound("topic")
	}
	if topic.IsLocked && !actor.Can(permission.TopicModerate) {
		return nil, errorx.ErrTopicLocked
	}

	if req.ReplyToID != nil {
		target, err := s.ReplyDAO.FindById(ctx, *req.ReplyToID)
		if err != nil {
			return nil, storageErr("reply.find", err, zap.String("reply_id", req.ReplyToID.String()))
		}
		// 只能回复同一主题下的帖子
		if target == nil || target.TopicID != topic.ID {
			return nil, errorx.NotFound("reply_to reply")
		}
	}

	now := s.Clock.Now()
	reply := &models.Reply{
		ID:        uuid.New(),
		TopicID:   topic.ID,
		UserID:    actor.ID,
		Content:   req.Content,
		ReplyToID: req.ReplyToID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = s.ReplyDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.ReplyDAO.WithTx(tx).Create(ctx, reply); err != nil {
			return err
		}
		if err := s.TopicDAO.WithTx(tx).TouchLastReply(ctx, topic.ID, actor.ID, now); err != nil {
			return err
		}
		return s.CategoryDAO.WithTx(tx).IncrStats(ctx, topic.CategoryID, 0, 1, &now)
	})
	if err != nil {
		return nil, storageErr("reply.create", err, zap.String("topic_id", topic.ID.String()))
	}

	postsCreated.WithLabelValues("reply").Inc()
	log.L.Info("reply created", zap.String("reply_id", reply.ID.String()), zap.String("topic_id", topic.ID.String()))
	return reply, nil
}

// MarkSolution 主题作者或有权限的人可以采纳，同一主题只保留一个
func (s *ReplyService) MarkSolution(ctx context.Context, replyID uuid.UUID, actor types.Actor) error {
	reply, err := s.ReplyDAO.FindById(ctx, replyID)
	if err != nil {
		return storageErr("reply.find", err, zap.String("reply_id", replyID.String()))
	}
	if reply == nil {
		return errorx.NotFound("reply")
	}
	topic, err := s.TopicDAO.FindById(ctx, reply.TopicID)
	if err != nil {
		return storageErr("topic.find", err, zap.String("topic_id", reply.TopicID.String()))
	}
	if topic == nil {
		return errorx.NotFound("topic")
	}
	if topic.UserID != actor.ID && !actor.Can(permission.ReplyMarkSolution) {
		return errorx.ErrForbidden
	}

	now := s.Clock.Now()
	err = s.ReplyDAO.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.ReplyDAO.WithTx(tx).MarkSolution(ctx, topic.ID, reply.ID, now); err != nil {
			return err
		}
		return s.TopicDAO.WithTx(tx).Update(ctx, topic.ID, map[string]any{"is_solved": true, "updated_at": now})
	})
	if err != nil {
		return storageErr("reply.mark_solution", err, zap.String("reply_id", replyID.String()))
	}
	return nil
}

// withDetails 一次查出被回复帖的作者，和回帖作者一起批量取用户信息
func (s *ReplyService) withDetails(ctx context.Context, replies []*models.Reply) ([]*types.ReplyWithDetails, error) {
	out := make([]*types.ReplyWithDetails, 0, len(replies))
	if len(replies) == 0 {
		return out, nil
	}

	userIDs := make([]uuid.UUID, 0, len(replies))
	parentIDs := make([]uuid.UUID, 0)
	for _, r := range replies {
		userIDs = append(userIDs, r.UserID)
		if r.ReplyToID != nil {
			parentIDs = append(parentIDs, *r.ReplyToID)
		}
	}

	parentAuthors := make(map[uuid.UUID]uuid.UUID, len(parentIDs))
	if len(parentIDs) > 0 {
		parents, err := s.ReplyDAO.FindByIds(ctx, parentIDs)
		if err != nil {
			return nil, storageErr("reply.find_by_ids", err)
		}
		for _, p := range parents {
			parentAuthors[p.ID] = p.UserID
			userIDs = append(userIDs, p.UserID)
		}
	}

	users, err := s.Users.BatchGetUserInfo(ctx, userIDs)
	if err != nil {
		return nil, storageErr("user.batch_get", err)
	}
	for _, r := range replies {
		out = append(out, replyDetails(r, parentAuthors, users))
	}
	return out, nil
}
