package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
[database]
host = "localhost"
user = "smc"
password = "from-file"
dbname = "availability"
`

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 300, cfg.Redis.TTLSeconds)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FullFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 8090

[database]
host = "db"
port = 6432
user = "smc"
password = "secret"
dbname = "availability"
sslmode = "require"

[redis]
enabled = true
addr = "redis:6379"
db = 2
ttl_seconds = 60

[logs]
level = "debug"
file = "logs/app.log"

[metrics]
enabled = true
service_name = "smc_availability"
`))

	require.NoError(t, err)
	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 60, cfg.Redis.TTLSeconds)
	assert.Equal(t, "logs/app.log", cfg.Logs.File)
	assert.Equal(t, "smc_availability", cfg.Metrics.ServiceName)
	assert.Equal(t, "host=db port=6432 user=smc password=secret dbname=availability sslmode=require", cfg.Database.DSN())
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("REDIS_PASSWORD", "redis-env")

	cfg, err := Load(writeConfig(t, minimalConfig))

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "redis-env", cfg.Redis.Password)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("broken toml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[database\nhost ="))
		assert.ErrorIs(t, err, ErrReadConfig)
	})

	t.Run("missing database fields", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server]\nhttp_port = 8080\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("redis without addr", func(t *testing.T) {
		_, err := Load(writeConfig(t, minimalConfig+"\n[redis]\nenabled = true\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
