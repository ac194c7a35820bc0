package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, "nexashop-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "memory", cfg.Cart.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Cart.TTL)
	assert.Equal(t, "stub", cfg.Storage.Backend)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
	assert.Contains(t, cfg.HTTP.CORSAllowHeaders, "X-Cart-Token")
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid in development", func(t *testing.T) {
		cfg := defaultConfig()
		require.NoError(t, cfg.validate())
	})

	t.Run("rejects unknown store backend", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Store.Backend = "mongo"
		require.Error(t, cfg.validate())
	})

	t.Run("rejects unknown cart backend", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Cart.Backend = "memcached"
		require.Error(t, cfg.validate())
	})

	t.Run("s3 storage requires bucket", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Storage.Backend = "s3"
		require.Error(t, cfg.validate())

		cfg.Storage.Bucket = "nexashop-images"
		require.NoError(t, cfg.validate())
	})

	t.Run("idle conns cannot exceed open conns", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Database.MaxIdleConns = 50
		require.Error(t, cfg.validate())
	})
}

func TestValidateProduction(t *testing.T) {
	productionConfig := func() *Config {
		cfg := defaultConfig()
		cfg.App.Env = "production"
		cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
		cfg.Store.Backend = "sqlite"
		cfg.Stripe.SecretKey = "sk_live_x"
		cfg.Stripe.WebhookSecret = "whsec_x"
		return cfg
	}

	t.Run("valid production config", func(t *testing.T) {
		require.NoError(t, productionConfig().validate())
	})

	t.Run("requires jwt secret", func(t *testing.T) {
		cfg := productionConfig()
		cfg.JWT.Secret = ""
		require.Error(t, cfg.validate())
	})

	t.Run("rejects short jwt secret", func(t *testing.T) {
		cfg := productionConfig()
		cfg.JWT.Secret = "short"
		require.Error(t, cfg.validate())
	})

	t.Run("rejects memory store", func(t *testing.T) {
		cfg := productionConfig()
		cfg.Store.Backend = "memory"
		require.Error(t, cfg.validate())
	})

	t.Run("requires webhook secret", func(t *testing.T) {
		cfg := productionConfig()
		cfg.Stripe.WebhookSecret = ""
		require.Error(t, cfg.validate())
	})

	t.Run("rejects wildcard CORS origin", func(t *testing.T) {
		cfg := productionConfig()
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		require.Error(t, cfg.validate())
	})

	t.Run("postgres needs password and ssl", func(t *testing.T) {
		cfg := productionConfig()
		cfg.Store.Backend = "postgres"
		require.Error(t, cfg.validate())

		cfg.Database.Password = "secret"
		require.Error(t, cfg.validate())

		cfg.Database.SSLMode = "require"
		require.NoError(t, cfg.validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := &DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "shop",
		Password: "p@ss/word",
		DBName:   "nexashop",
		SSLMode:  "require",
	}
	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	assert.NotContains(t, dsn, "p@ss/word") // escaped
}

func TestRedisAddr(t *testing.T) {
	r := &RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}
