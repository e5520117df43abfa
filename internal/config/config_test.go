package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := LoadFrom(ctx, envconfig.MapLookuper(map[string]string{
			"DATABASE_URL": "postgres://u:p@localhost:5432/orders",
		}))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, DialectPostgres, cfg.DBDialect)
		assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
		assert.Equal(t, 5, cfg.LoginRateLimit)
		assert.Equal(t, 15*time.Minute, cfg.LoginRateWindow)
		assert.Equal(t, RateLimitMemory, cfg.RateLimitStore)
		assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
		assert.Equal(t, ":8080", cfg.Addr())
		assert.Empty(t, cfg.TrustedProxies)
	})

	t.Run("trusted proxies", func(t *testing.T) {
		cfg, err := LoadFrom(ctx, envconfig.MapLookuper(map[string]string{
			"DB_DIALECT":      "sqlite",
			"TRUSTED_PROXIES": "10.0.0.1,172.16.0.0/12",
		}))
		require.NoError(t, err)
		assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, cfg.TrustedProxies)

		_, err = LoadFrom(ctx, envconfig.MapLookuper(map[string]string{
			"DB_DIALECT":      "sqlite",
			"TRUSTED_PROXIES": "not-an-ip",
		}))
		assert.Error(t, err)
	})

	t.Run("sqlite needs no url", func(t *testing.T) {
		cfg, err := LoadFrom(ctx, envconfig.MapLookuper(map[string]string{
			"DB_DIALECT": "SQLite",
		}))
		require.NoError(t, err)
		assert.Equal(t, DialectSQLite, cfg.DBDialect)
	})

	t.Run("postgres without url fails", func(t *testing.T) {
		_, err := LoadFrom(ctx, envconfig.MapLookuper(map[string]string{}))
		assert.Error(t, err)
	})

	t.Run("production requires a real secret", func(t *testing.T) {
		_, err := LoadFrom(ctx, envconfig.MapLookuper(map[string]string{
			"APP_ENV":      "production",
			"DATABASE_URL": "postgres://u:p@db/orders",
		}))
		assert.Error(t, err)

		cfg, err := LoadFrom(ctx, envconfig.MapLookuper(map[string]string{
			"APP_ENV":      "production",
			"DATABASE_URL": "postgres://u:p@db/orders",
			"JWT_SECRET":   "s3cr3t",
		}))
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("rejects unknown rate limit backend", func(t *testing.T) {
		_, err := LoadFrom(ctx, envconfig.MapLookuper(map[string]string{
			"DB_DIALECT":         "sqlite",
			"RATE_LIMIT_BACKEND": "memcached",
		}))
		assert.Error(t, err)
	})
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{FrontendURL: "https://app.example.com, http://localhost:5173,,"}
	assert.Equal(t, []string{"https://app.example.com", "http://localhost:5173"}, cfg.AllowedOrigins())
}
