package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, 20, cfg.Server.GenerateRateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "info", cfg.Server.LogLevel)
		assert.Equal(t, 1000, cfg.Cache.Size)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, 30*time.Second, cfg.Cache.CatalogTTL)
		assert.Equal(t, "fridge", cfg.Generation.Ranking)
		assert.Zero(t, cfg.Generation.Seed)
		assert.Equal(t, "menu_service", cfg.Database.DatabaseName)
		assert.False(t, cfg.Database.Enabled)
		assert.True(t, cfg.Database.SeedCatalog)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("GENERATE_RATE_LIMIT", "5")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("CACHE_SIZE", "500")
		_ = os.Setenv("CACHE_TTL", "10m")
		_ = os.Setenv("GENERATION_RANKING", "Shuffle")
		_ = os.Setenv("GENERATION_SEED", "42")
		_ = os.Setenv("REDIS_ENABLED", "true")
		_ = os.Setenv("REDIS_DB", "3")
		_ = os.Setenv("SEED_CATALOG", "false")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 5, cfg.Server.GenerateRateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 500, cfg.Cache.Size)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "shuffle", cfg.Generation.Ranking)
		assert.Equal(t, int64(42), cfg.Generation.Seed)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, 3, cfg.Redis.DB)
		assert.False(t, cfg.Database.SeedCatalog)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("MONGODB_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("GENERATION_SEED", "abc")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Zero(t, cfg.Generation.Seed)
	})

	t.Run("appends CORS origins to the defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", " https://menu.example.com , ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://menu.example.com",
		}, cfg.Server.CORSOrigins)
	})
}

func TestLoadDotEnv(t *testing.T) {
	t.Run("reads variables from the file", func(t *testing.T) {
		os.Clearenv()
		defer os.Clearenv()

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nGENERATION_RANKING=shuffle\n"), 0o600))

		loadDotEnv(path)

		assert.Equal(t, "7070", os.Getenv("PORT"))
		assert.Equal(t, "shuffle", os.Getenv("GENERATION_RANKING"))
	})

	t.Run("does not override the environment", func(t *testing.T) {
		os.Clearenv()
		defer os.Clearenv()
		_ = os.Setenv("PORT", "9090")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("PORT=7070\n"), 0o600))

		loadDotEnv(path)

		assert.Equal(t, "9090", os.Getenv("PORT"))
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			loadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
		})
	})
}
