package dao

import (
	"Agora/internal/dbtest"
	"Agora/models"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) *gorm.DB {
	t.Helper()
	return dbtest.Open(t, Tables()...)
}

func ptrTime(t time.Time) *time.Time { return &t }

func seedCategory(t *testing.T, db *gorm.DB, name string, sort int) *models.Category {
	t.Helper()
	c := &models.Category{ID: uuid.New(), Name: name, Color: "#336699", SortOrder: sort, CreatedAt: base}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedTopic(t *testing.T, db *gorm.DB, categoryID uuid.UUID, slug string, created time.Time, pinned bool, lastReply *time.Time) *models.Topic {
	t.Helper()
	tp := &models.Topic{
		ID:          uuid.New(),
		CategoryID:  categoryID,
		Title:       slug,
		Slug:        slug,
		UserID:      uuid.New(),
		IsPinned:    pinned,
		LastReplyAt: lastReply,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	require.NoError(t, db.Create(tp).Error)
	return tp
}

func slugs(topics []*models.Topic) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		out = append(out, t.Slug)
	}
	return out
}

func TestTopic_ListOrdering(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	cat := seedCategory(t, db, "general", 0)

	seedTopic(t, db, cat.ID, "old-no-reply", base, false, nil)
	seedTopic(t, db, cat.ID, "new-no-reply", base.Add(time.Hour), false, nil)
	seedTopic(t, db, cat.ID, "replied-early", base, false, ptrTime(base.Add(2*time.Hour)))
	seedTopic(t, db, cat.ID, "replied-late", base, false, ptrTime(base.Add(3*time.Hour)))
	seedTopic(t, db, cat.ID, "pinned-quiet", base.Add(-time.Hour), true, nil)

	topics, err := NewTopic(db).List(ctx, &cat.ID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"pinned-quiet",
		"replied-late",
		"replied-early",
		"new-no-reply",
		"old-no-reply",
	}, slugs(topics))
}

func TestTopic_ListFilterAndPage(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	a := seedCategory(t, db, "a", 0)
	b := seedCategory(t, db, "b", 1)

	seedTopic(t, db, a.ID, "a-1", base, false, nil)
	seedTopic(t, db, a.ID, "a-2", base.Add(time.Minute), false, nil)
	seedTopic(t, db, b.ID, "b-1", base.Add(2*time.Minute), false, nil)

	d := NewTopic(db)
	all, err := d.List(ctx, nil, 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page2, err := d.List(ctx, &a.ID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1"}, slugs(page2))

	page3, err := d.List(ctx, &a.ID, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestTopic_SlugLookup(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	cat := seedCategory(t, db, "general", 0)
	seedTopic(t, db, cat.ID, "hello-world", base, false, nil)

	d := NewTopic(db)
	exists, err := d.SlugExists(ctx, "hello-world")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = d.SlugExists(ctx, "hello-world-1")
	require.NoError(t, err)
	assert.False(t, exists)

	found, err := d.FindBySlug(ctx, "hello-world")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, cat.ID, found.CategoryID)

	missing, err := d.FindBySlug(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTopic_LatestPerCategory(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	a := seedCategory(t, db, "a", 0)
	b := seedCategory(t, db, "b", 1)
	empty := seedCategory(t, db, "empty", 2)

	seedTopic(t, db, a.ID, "a-old", base, false, nil)
	seedTopic(t, db, a.ID, "a-new", base.Add(time.Hour), false, nil)
	// 回复时间不影响“最新主题”的判定
	seedTopic(t, db, a.ID, "a-active", base.Add(-time.Hour), true, ptrTime(base.Add(5*time.Hour)))
	seedTopic(t, db, b.ID, "b-only", base, false, nil)

	latest, err := NewTopic(db).LatestPerCategory(ctx, []uuid.UUID{a.ID, b.ID, empty.ID})
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "a-new", latest[a.ID].Slug)
	assert.Equal(t, "b-only", latest[b.ID].Slug)
	assert.Nil(t, latest[empty.ID])

	none, err := NewTopic(db).LatestPerCategory(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTopic_Counters(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	cat := seedCategory(t, db, "general", 0)
	tp := seedTopic(t, db, cat.ID, "t", base, false, nil)
	d := NewTopic(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, d.IncrViews(ctx, tp.ID))
	}
	replier := uuid.New()
	at := base.Add(time.Hour)
	require.NoError(t, d.TouchLastReply(ctx, tp.ID, replier, at))

	got, err := d.FindById(ctx, tp.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.EqualValues(t, 3, got.Views)
	assert.EqualValues(t, 1, got.RepliesCount)
	require.NotNil(t, got.LastReplyAt)
	assert.True(t, got.LastReplyAt.Equal(at))
	require.NotNil(t, got.LastReplyUserID)
	assert.Equal(t, replier, *got.LastReplyUserID)
}

func TestTopic_UpdateKeepsSlug(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	cat := seedCategory(t, db, "general", 0)
	tp := seedTopic(t, db, cat.ID, "fixed-slug", base, false, nil)
	d := NewTopic(db)

	require.NoError(t, d.Update(ctx, tp.ID, map[string]any{"title": "Renamed", "slug": "renamed", "is_locked": true}))

	got, err := d.FindById(ctx, tp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "fixed-slug", got.Slug)
	assert.True(t, got.IsLocked)
}

func TestCategory_ListAndStats(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	seedCategory(t, db, "zeta", 0)
	seedCategory(t, db, "alpha", 1)
	beta := seedCategory(t, db, "beta", 0)

	d := NewCategory(db)
	items, err := d.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(items))
	for _, c := range items {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"beta", "zeta", "alpha"}, names)

	at := base.Add(time.Hour)
	require.NoError(t, d.IncrStats(ctx, beta.ID, 1, 2, &at))
	require.NoError(t, d.IncrStats(ctx, beta.ID, -5, -1, nil))

	got, err := d.FindById(ctx, beta.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, got.TopicsCount)
	assert.EqualValues(t, 1, got.PostsCount)
	require.NotNil(t, got.LastPostAt)
	assert.True(t, got.LastPostAt.Equal(at))
}

func TestReply_ListAndSolution(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	cat := seedCategory(t, db, "general", 0)
	tp := seedTopic(t, db, cat.ID, "t", base, false, nil)

	var ids []uuid.UUID
	for i, offset := range []time.Duration{2 * time.Minute, 0, time.Minute} {
		r := &models.Reply{
			ID:        uuid.New(),
			TopicID:   tp.ID,
			UserID:    uuid.New(),
			Content:   string(rune('a' + i)),
			CreatedAt: base.Add(offset),
			UpdatedAt: base.Add(offset),
		}
		require.NoError(t, db.Create(r).Error)
		ids = append(ids, r.ID)
	}

	d := NewReply(db)
	replies, err := d.ListByTopic(ctx, tp.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, replies, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{replies[0].Content, replies[1].Content, replies[2].Content})

	count, err := d.CountByTopic(ctx, tp.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	require.NoError(t, d.MarkSolution(ctx, tp.ID, ids[0], base))
	require.NoError(t, d.MarkSolution(ctx, tp.ID, ids[1], base))

	var solutions []*models.Reply
	require.NoError(t, db.Where("is_solution = ?", true).Find(&solutions).Error)
	require.Len(t, solutions, 1)
	assert.Equal(t, ids[1], solutions[0].ID)
}

func TestTopicView_InsertDedup(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	topicID := uuid.New()
	user := uuid.New()
	d := NewTopicView(db)

	newView := func(userID *uuid.UUID, ip string) *models.TopicView {
		return &models.TopicView{
			ID:        uuid.New(),
			TopicID:   topicID,
			UserID:    userID,
			ViewerKey: models.ViewerKey(userID),
			IPAddress: ip,
			ViewedAt:  base,
		}
	}

	inserted, err := d.Insert(ctx, newView(nil, "10.0.0.1"))
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = d.Insert(ctx, newView(nil, "10.0.0.1"))
	require.NoError(t, err)
	assert.False(t, inserted)

	inserted, err = d.Insert(ctx, newView(&user, "10.0.0.1"))
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = d.Insert(ctx, newView(nil, "10.0.0.2"))
	require.NoError(t, err)
	assert.True(t, inserted)

	count, err := d.CountByTopic(ctx, topicID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestRepo_Transaction(t *testing.T) {
	db := setup(t)
	ctx := context.Background()
	d := NewCategory(db)

	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		c := &models.Category{ID: uuid.New(), Name: "rolled-back", Color: "#000", CreatedAt: base}
		if err := d.WithTx(tx).Create(ctx, c); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	require.ErrorIs(t, err, gorm.ErrInvalidData)

	count, err := d.FindCount(ctx, "1 = 1")
	require.NoError(t, err)
	assert.Zero(t, count)
}
