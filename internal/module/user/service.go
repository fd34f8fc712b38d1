package user

import (
	"Agora/config"
	"Agora/pkg/log"
	"Agora/types"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Service 接口
type Service interface {
	GetUser(ctx context.Context, id uuid.UUID) (*types.UserInfo, error)
	BatchGetUserInfo(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]types.UserInfo, error)
}

// service 实现
type service struct {
	repo  Repository
	cache *infoCache
}

// NewService 构造函数，rdb 可以为 nil
func NewService(repo Repository, rdb *redis.Client, conf *config.Config) Service {
	ttl := 10 * time.Minute
	if conf != nil && conf.Redis != nil && conf.Redis.UserCacheTTL > 0 {
		ttl = conf.Redis.UserCacheTTL
	}
	return &service{repo: repo, cache: &infoCache{rdb: rdb, ttl: ttl}}
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*types.UserInfo, error) {
	infos, err := s.BatchGetUserInfo(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	info, ok := infos[id]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// BatchGetUserInfo 先查缓存，未命中的一次性回源；查不到的用户不出现在结果里
func (s *service) BatchGetUserInfo(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]types.UserInfo, error) {
	ids = dedup(ids)
	if len(ids) == 0 {
		return map[uuid.UUID]types.UserInfo{}, nil
	}

	result, err := s.cache.MGet(ctx, ids)
	if err != nil {
		// 缓存挂了直接回源
		log.L.Warn("user cache mget failed", zap.Error(err))
	}

	missing := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := result[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return result, nil
	}

	users, err := s.repo.FindByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	loaded := make([]types.UserInfo, 0, len(users))
	for _, u := range users {
		info := toInfo(u)
		result[u.ID] = info
		loaded = append(loaded, info)
	}
	if err := s.cache.MSet(ctx, loaded); err != nil {
		log.L.Warn("user cache mset failed", zap.Error(err))
	}
	return result, nil
}

func toInfo(u *UserModel) types.UserInfo {
	return types.UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

func dedup(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
