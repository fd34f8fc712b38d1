package user

import (
	"Agora/config"
	"Agora/internal/dbtest"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, name, role string) *UserModel {
	t.Helper()
	u := &UserModel{ID: uuid.New(), Username: name, Email: name + "@example.com", Role: role, CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestService_BatchGetUserInfo_NoCache(t *testing.T) {
	db := dbtest.Open(t, &UserModel{})
	alice := seedUser(t, db, "alice", "admin")
	bob := seedUser(t, db, "bob", "viewer")

	svc := NewService(NewRepository(db), nil, nil)
	infos, err := svc.BatchGetUserInfo(context.Background(), []uuid.UUID{alice.ID, bob.ID, alice.ID, uuid.New(), uuid.Nil})
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "alice", infos[alice.ID].Username)
	assert.Equal(t, "admin", infos[alice.ID].Role)
	assert.Equal(t, "bob@example.com", infos[bob.ID].Email)

	empty, err := svc.BatchGetUserInfo(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestService_BatchGetUserInfo_ReadThrough(t *testing.T) {
	db := dbtest.Open(t, &UserModel{})
	alice := seedUser(t, db, "alice", "editor")

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	conf := &config.Config{Redis: &config.Redis{UserCacheTTL: time.Minute}}
	svc := NewService(NewRepository(db), rdb, conf)
	ctx := context.Background()

	infos, err := svc.BatchGetUserInfo(ctx, []uuid.UUID{alice.ID})
	require.NoError(t, err)
	assert.Equal(t, "alice", infos[alice.ID].Username)

	key := "agora:user:info:" + alice.ID.String()
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	// 删掉数据库里的记录，仍然能从缓存拿到
	require.NoError(t, db.Delete(&UserModel{}, "id = ?", alice.ID).Error)
	info, err := svc.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "editor", info.Role)

	mr.FastForward(2 * time.Minute)
	info, err = svc.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestService_CacheDownFallsBack(t *testing.T) {
	db := dbtest.Open(t, &UserModel{})
	alice := seedUser(t, db, "alice", "viewer")

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	svc := NewService(NewRepository(db), rdb, nil)
	info, err := svc.GetUser(context.Background(), alice.ID)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "alice", info.Username)
}
