package service

import (
	"Agora/config"
	"Agora/dao"
	"Agora/internal/dbtest"
	"Agora/internal/module/user"
	"Agora/models"
	"Agora/pkg/clock"
	"Agora/pkg/permission"
	"Agora/types"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db         *gorm.DB
	clock      *clock.Fake
	topicDAO   *dao.Topic
	categories *CategoryService
	topics     *TopicService
	replies    *ReplyService
	views      *ViewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t, append(dao.Tables(), &user.UserModel{})...)

	conf := &config.Config{Forum: &config.Forum{
		TopicPageSize: config.DefaultTopicPageSize,
		ReplyPageSize: config.DefaultReplyPageSize,
		MaxPageSize:   config.DefaultMaxPageSize,
	}}
	clk := clock.NewFake(base, time.Second)
	categoryDAO := dao.NewCategory(db)
	topicDAO := dao.NewTopic(db)
	replyDAO := dao.NewReply(db)
	users := user.NewService(user.NewRepository(db), nil, conf)

	views := &ViewService{TopicDAO: topicDAO, ViewDAO: dao.NewTopicView(db), Clock: clk}
	replies := &ReplyService{
		Config:      conf,
		CategoryDAO: categoryDAO,
		TopicDAO:    topicDAO,
		ReplyDAO:    replyDAO,
		Users:       users,
		Clock:       clk,
	}
	topics := &TopicService{
		Config:       conf,
		CategoryDAO:  categoryDAO,
		TopicDAO:     topicDAO,
		ReplyDAO:     replyDAO,
		Slugs:        &SlugGenerator{Checker: topicDAO},
		Users:        users,
		ViewService:  views,
		ReplyService: replies,
		Clock:        clk,
	}
	categories := &CategoryService{CategoryDAO: categoryDAO, TopicDAO: topicDAO, Users: users, Clock: clk}

	return &fixture{
		db:         db,
		clock:      clk,
		topicDAO:   topicDAO,
		categories: categories,
		topics:     topics,
		replies:    replies,
		views:      views,
	}
}

func (f *fixture) user(t *testing.T, name string, role permission.Role) types.Actor {
	t.Helper()
	u := &user.UserModel{ID: uuid.New(), Username: name, Email: name + "@example.com", Role: string(role), CreatedAt: base}
	require.NoError(t, f.db.Create(u).Error)
	return types.Actor{ID: u.ID, Role: role}
}

func (f *fixture) category(t *testing.T, name string, sort int) *models.Category {
	t.Helper()
	c := &models.Category{ID: uuid.New(), Name: name, Color: "#112233", SortOrder: sort, CreatedAt: base}
	require.NoError(t, f.db.Create(c).Error)
	return c
}

func (f *fixture) topic(t *testing.T, categoryID uuid.UUID, title string, author types.Actor) *models.Topic {
	t.Helper()
	topic, err := f.topics.CreateTopic(context.Background(), &types.CreateTopicRequest{
		CategoryID: categoryID,
		Title:      title,
		Content:    "body of " + title,
	}, author.ID)
	require.NoError(t, err)
	return topic
}

func (f *fixture) reload(t *testing.T, id uuid.UUID) *models.Topic {
	t.Helper()
	topic, err := f.topicDAO.FindById(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, topic)
	return topic
}

func (f *fixture) count(t *testing.T, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	q := f.db.Model(model)
	if where != "" {
		q = q.Where(where, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
