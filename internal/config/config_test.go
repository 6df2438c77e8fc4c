package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessTokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, int64(1<<20), cfg.UploadMaxBytes)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.False(t, cfg.IsProduction)
}

func TestFromEnv_RequiresDSNForPostgres(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := fromEnv()
	assert.ErrorContains(t, err, "DB_DSN")
}

func TestFromEnv_RequiresJWTSecret(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "")

	_, err := fromEnv()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestFromEnv_RejectsBadValues(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "secret")

	t.Setenv("BCRYPT_COST", "ten")
	_, err := fromEnv()
	assert.ErrorContains(t, err, "BCRYPT_COST")

	t.Setenv("BCRYPT_COST", "")
	t.Setenv("JWT_ACCESS_TOKEN_TTL", "forever")
	_, err = fromEnv()
	assert.ErrorContains(t, err, "JWT_ACCESS_TOKEN_TTL")

	t.Setenv("JWT_ACCESS_TOKEN_TTL", "")
	t.Setenv("STORAGE_DRIVER", "mongo")
	_, err = fromEnv()
	assert.ErrorContains(t, err, "STORAGE_DRIVER")
}
