package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// t.Setenv registers the restore; unset so LookupEnv misses.
	for _, key := range []string{"APP_PORT", "APP_MODE", "MONGO_URI", "MONGO_DB_NAME", "JWT_SECRET", "JWT_EXPIRY_DAYS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	assert.Equal(t, "8000", cfg.AppPort)
	assert.Equal(t, "debug", cfg.AppMode)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "Scene", cfg.MongoDBName)
	assert.Equal(t, 7, cfg.JWTExpiryDays)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("APP_MODE", "release")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DB_NAME", "scene_test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY_DAYS", "2")

	cfg := LoadConfig()

	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, "release", cfg.AppMode)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "scene_test", cfg.MongoDBName)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2, cfg.JWTExpiryDays)
}

func TestGetEnvAsInt_Malformed(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DAYS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 7, cfg.JWTExpiryDays)
}
