package service

import (
	"Agora/dao"
	"Agora/models"
	"Agora/pkg/clock"
	"Agora/pkg/errorx"
	"context"
	"net/netip"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var _ IViewService = (*ViewService)(nil)

type IViewService interface {
	RecordView(ctx context.Context, topicID uuid.UUID, viewerUserID *uuid.UUID, ip string) (bool, error)
}

type ViewService struct {
	TopicDAO *dao.Topic
	ViewDAO  *dao.TopicView
	Clock    clock.Clock
}

// RecordView 先按 (主题, 用户或匿名, IP) 去重写浏览记录，再无条件给 views 加一。
// views 是原始点击数，和去重表的行数不一致。返回值表示是否写入了新的浏览记录。
func (s *ViewService) RecordView(ctx context.Context, topicID uuid.UUID, viewerUserID *uuid.UUID, ip string) (bool, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false, errorx.NewValidation("ip", "invalid address")
	}

	view := &models.TopicView{
		ID:        uuid.New(),
		TopicID:   topicID,
		UserID:    viewerUserID,
		ViewerKey: models.ViewerKey(viewerUserID),
		IPAddress: addr.Unmap().String(),
		ViewedAt:  s.Clock.Now(),
	}
	inserted, err := s.ViewDAO.Insert(ctx, view)
	if err != nil {
		return false, storageErr("topic_view.insert", err, zap.String("topic_id", topicID.String()))
	}

	if err := s.TopicDAO.IncrViews(ctx, topicID); err != nil {
		return inserted, storageErr("topic.incr_views", err, zap.String("topic_id", topicID.String()))
	}

	if inserted {
		topicViews.WithLabelValues("new").Inc()
	} else {
		topicViews.WithLabelValues("duplicate").Inc()
	}
	return inserted, nil
}
