package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var configKeys = []string{
	"APP_ENV", "PORT", "STORE_DRIVER", "MONGO_URI", "MONGO_DB",
	"MONGO_TIMEOUT", "SQLITE_PATH", "LOG_LEVEL",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "development", cfg.Env)
		assert.False(t, cfg.Production())
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, DriverMongo, cfg.StoreDriver)
		assert.Equal(t, "mongodb://localhost:27017/plantsDatabase", cfg.MongoURI)
		assert.Equal(t, "plantsDatabase", cfg.MongoDB)
		assert.Equal(t, 10*time.Second, cfg.MongoTimeout)
		assert.Equal(t, "gardentrack.db", cfg.SQLitePath)
		assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	})

	t.Run("overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("PORT", "9000")
		t.Setenv("STORE_DRIVER", "SQLite")
		t.Setenv("MONGO_TIMEOUT", "3")
		t.Setenv("SQLITE_PATH", "/tmp/plants.db")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.Production())
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, DriverSQLite, cfg.StoreDriver)
		assert.Equal(t, 3*time.Second, cfg.MongoTimeout)
		assert.Equal(t, "/tmp/plants.db", cfg.SQLitePath)
		assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	})

	invalid := map[string]string{
		"STORE_DRIVER":  "postgres",
		"MONGO_TIMEOUT": "soon",
		"LOG_LEVEL":     "loud",
	}
	for key, value := range invalid {
		t.Run("invalid "+key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}

	t.Run("database name comes from URI path", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MONGO_URI", "mongodb://db.example:27017/garden?connectTimeoutMS=500")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "garden", cfg.MongoDB)
	})

	t.Run("MONGO_DB overrides URI path", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MONGO_URI", "mongodb://db.example:27017/garden")
		t.Setenv("MONGO_DB", "orchard")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "orchard", cfg.MongoDB)
	})

	t.Run("URI without database falls back to default", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MONGO_URI", "mongodb://db.example:27017")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "plantsDatabase", cfg.MongoDB)
	})

	t.Run("malformed URI", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MONGO_URI", "http://db.example/garden")

		_, err := FromEnv()
		assert.ErrorContains(t, err, "MONGO_URI")
	})

	t.Run("URI is not parsed for sqlite", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("STORE_DRIVER", "sqlite")
		t.Setenv("MONGO_URI", "http://db.example/garden")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "plantsDatabase", cfg.MongoDB)
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MONGO_TIMEOUT", "0")

		_, err := FromEnv()
		assert.Error(t, err)
	})
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("STORE_DRIVER=sqlite\nSQLITE_PATH=from-file.db\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "from-file.db", cfg.SQLitePath)
}

func TestLoadWithoutEnvFile(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverMongo, cfg.StoreDriver)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(&Config{Env: "production", LogLevel: zapcore.WarnLevel})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestOpenStoreSQLite(t *testing.T) {
	cfg := &Config{StoreDriver: DriverSQLite, SQLitePath: ":memory:"}
	s, err := OpenStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close(context.Background())

	plants, err := s.FindAllPlants(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plants)
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	_, err := OpenStore(context.Background(), &Config{StoreDriver: "redis"}, zap.NewNop())
	assert.Error(t, err)
}
