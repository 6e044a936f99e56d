package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Values from file", func(t *testing.T) {
		// Given: a config file selecting redis
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nhttp-port: \"8080\"\nstorage: redis\nredis:\n  host: cache\n  port: \"6380\"\n  key-ttl: 1h\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf := MustLoad(path)

		// Then: file values and defaults are combined
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.KeyTTL)
		assert.Equal(t, 10*time.Second, conf.ShutdownTimeout)
		assert.Equal(t, 16, conf.Events.Buffer)
	})

	t.Run("Missing file falls back to environment", func(t *testing.T) {
		// Given: no file and a port in the environment
		t.Setenv("HTTP_PORT", "4000")

		// When: a nonexistent path is loaded
		conf := MustLoad(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: environment and defaults apply
		assert.Equal(t, "4000", conf.HTTPPort)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, []string{"*"}, conf.CORS.AllowOrigins)
	})

	t.Run("Unknown storage panics", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("storage: postgres\n"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})
}
