package config

import (
	"fmt"
	"net/url"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Database 数据库配置
type Database struct {
	Driver       string `json:"driver" yaml:"driver"`
	Host         string `json:"host" yaml:"host"`
	Port         int    `json:"port" yaml:"port"`
	User         string `json:"user" yaml:"user"`
	Password     string `json:"password" yaml:"password"`
	Name         string `json:"name" yaml:"name"`
	DSN          string `json:"dsn" yaml:"dsn"` // 非空时直接使用
	MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns" yaml:"max_idle_conns"`
	Debug        bool   `json:"debug" yaml:"debug"`
	AutoMigrate  bool   `json:"auto_migrate" yaml:"auto_migrate"`
}

func (d *Database) applyDefaults() {
	if d.Driver == "" {
		d.Driver = DriverMySQL
	}
	if d.Host == "" {
		d.Host = "127.0.0.1"
	}
	if d.Port == 0 {
		switch d.Driver {
		case DriverMySQL:
			d.Port = 3306
		case DriverPostgres:
			d.Port = 5432
		}
	}
	if d.MaxOpenConns == 0 {
		d.MaxOpenConns = 20
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = 5
	}
}

func (d *Database) Dsn() string {
	if d.DSN != "" {
		return d.DSN
	}
	switch d.Driver {
	case DriverPostgres:
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(d.User, d.Password),
			Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
			Path:     d.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	case DriverSQLite:
		if d.Name == "" {
			return "file::memory:?cache=shared"
		}
		return d.Name
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User, d.Password, d.Host, d.Port, d.Name)
	}
}
