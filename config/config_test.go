package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	conf, err := Parse([]byte("app:\n  env: test\n"))
	require.NoError(t, err)

	assert.Equal(t, DriverMySQL, conf.Database.Driver)
	assert.Equal(t, 3306, conf.Database.Port)
	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, DefaultTopicPageSize, conf.Forum.TopicPageSize)
	assert.Equal(t, DefaultReplyPageSize, conf.Forum.ReplyPageSize)
	assert.Equal(t, DefaultMaxPageSize, conf.Forum.MaxPageSize)
	assert.Nil(t, conf.Redis)
	assert.False(t, conf.Debug())
}

func TestParse_UnknownDriver(t *testing.T) {
	_, err := Parse([]byte("database:\n  driver: oracle\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestParse_PageSizeAboveMax(t *testing.T) {
	_, err := Parse([]byte("forum:\n  topic_page_size: 50\n  max_page_size: 10\n"))
	require.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	content := `
app:
  debug: true
database:
  driver: postgres
  host: db
  user: forum
  password: secret
  name: forum
redis:
  address: cache
  user_cache_ttl: 30s
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.True(t, conf.Debug())
	assert.Equal(t, 5432, conf.Database.Port)
	assert.Equal(t, "postgres://forum:secret@db:5432/forum?sslmode=disable", conf.Database.Dsn())
	require.NotNil(t, conf.Redis)
	assert.Equal(t, 6379, conf.Redis.Port)
	assert.Equal(t, 30*time.Second, conf.Redis.UserCacheTTL)
}

func TestDatabase_Dsn(t *testing.T) {
	tests := []struct {
		name string
		db   Database
		want string
	}{
		{"mysql", Database{Driver: DriverMySQL, Host: "h", Port: 3306, User: "u", Password: "p", Name: "n"},
			"u:p@tcp(h:3306)/n?charset=utf8mb4&parseTime=True&loc=Local"},
		{"sqlite file", Database{Driver: DriverSQLite, Name: "forum.db"}, "forum.db"},
		{"sqlite memory", Database{Driver: DriverSQLite}, "file::memory:?cache=shared"},
		{"override", Database{Driver: DriverMySQL, DSN: "raw"}, "raw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.db.Dsn())
		})
	}
}

func TestNew_PanicsOnMissingFile(t *testing.T) {
	assert.Panics(t, func() {
		New(filepath.Join(t.TempDir(), "missing.yaml"))
	})
}
