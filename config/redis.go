package config

import "time"

// Redis Redis配置信息，未配置时用户信息不走缓存
type Redis struct {
	Address      string        `json:"address" yaml:"address"`
	Port         int           `json:"port" yaml:"port"`
	Username     string        `json:"username" yaml:"username"`
	Password     string        `json:"password" yaml:"password"`
	Database     int           `json:"database" yaml:"database"`
	UserCacheTTL time.Duration `json:"user_cache_ttl" yaml:"user_cache_ttl"`
}

func (r *Redis) applyDefaults() {
	if r.Port == 0 {
		r.Port = 6379
	}
	if r.UserCacheTTL <= 0 {
		r.UserCacheTTL = 10 * time.Minute
	}
}
