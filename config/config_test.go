package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh-secret")

	t.Run("defaults", func(t *testing.T) {
		cfg := Load()

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "", cfg.DBURL)
		assert.Equal(t, "access-secret", cfg.AccessTokenSecret)
		assert.Equal(t, "refresh-secret", cfg.RefreshTokenSecret)
		assert.Equal(t, 15, cfg.AccessExpiryMin)
		assert.Equal(t, 10080, cfg.RefreshExpiryMin)
		assert.Equal(t, 500, cfg.SignInLogCap)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DB_URL", "postgres://localhost/voices")
		t.Setenv("ACCESS_TOKEN_EXPIRY", "30")
		t.Setenv("SIGNIN_LOG_CAP", "200")

		cfg := Load()

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "postgres://localhost/voices", cfg.DBURL)
		assert.Equal(t, 30, cfg.AccessExpiryMin)
		assert.Equal(t, 200, cfg.SignInLogCap)
	})

	t.Run("invalid int falls back to default", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_EXPIRY", "not-a-number")

		cfg := Load()

		assert.Equal(t, 15, cfg.AccessExpiryMin)
	})
}
