package user

import (
	"Agora/types"
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// infoCache 用户信息读穿缓存，rdb 为 nil 时全部 miss
type infoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func (c *infoCache) key(id uuid.UUID) string {
	return "agora:user:info:" + id.String()
}

func (c *infoCache) enabled() bool {
	return c != nil && c.rdb != nil
}

// MGet 返回命中的部分
func (c *infoCache) MGet(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]types.UserInfo, error) {
	hits := make(map[uuid.UUID]types.UserInfo, len(ids))
	if !c.enabled() || len(ids) == 0 {
		return hits, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.key(id)
	}
	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return hits, err
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var info types.UserInfo
		if json.Unmarshal([]byte(s), &info) == nil {
			hits[ids[i]] = info
		}
	}
	return hits, nil
}

func (c *infoCache) MSet(ctx context.Context, infos []types.UserInfo) error {
	if !c.enabled() || len(infos) == 0 {
		return nil
	}
	pipe := c.rdb.Pipeline()
	for _, info := range infos {
		b, err := json.Marshal(info)
		if err != nil {
			return err
		}
		pipe.Set(ctx, c.key(info.ID), b, c.ttl)
	}
	_, err := pipe.Exec(ctx)
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
