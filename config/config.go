package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App      `json:"app" yaml:"app"`
	Redis    *Redis    `json:"redis" yaml:"redis"`
	Database *Database `json:"database" yaml:"database"`
	Jwt      *Jwt      `json:"jwt" yaml:"jwt"`
	Server   *Server   `json:"server" yaml:"server"`
	Forum    *Forum    `json:"forum" yaml:"forum"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// New 读取配置文件，失败直接 panic
func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

func Load(filename string) (*Config, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(content)
}

func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 config.yaml 读取错误: %w", err)
	}
	conf.ApplyDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// ApplyDefaults 补全缺省段落
func (c *Config) ApplyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	c.Database.applyDefaults()
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Forum == nil {
		c.Forum = &Forum{}
	}
	c.Forum.applyDefaults()
	if c.Redis != nil {
		c.Redis.applyDefaults()
	}
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Forum.MaxPageSize < c.Forum.TopicPageSize || c.Forum.MaxPageSize < c.Forum.ReplyPageSize {
		return fmt.Errorf("forum.max_page_size %d is smaller than a default page size", c.Forum.MaxPageSize)
	}
	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App != nil && c.App.Debug
}
