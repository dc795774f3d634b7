package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"DATABASE_URL": "postgres://localhost/fittrack",
		"JWT_SECRET":   "0123456789abcdef0123",
	}))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"DATABASE_URL":         "postgres://localhost/fittrack",
		"JWT_SECRET":           "dev",
		"APP_ENV":              "development",
		"PORT":                 "8080",
		"JWT_TTL":              "1h",
		"AUTO_MIGRATE":         "false",
		"CORS_ALLOWED_ORIGINS": "http://localhost:5173, https://fit.example.com",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, []string{"http://localhost:5173", "https://fit.example.com"}, cfg.CORSAllowedOrigins)
}

func TestFromLookupRejectsMissingOrWeakSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing database url", map[string]string{"JWT_SECRET": "0123456789abcdef"}},
		{"missing secret", map[string]string{"DATABASE_URL": "postgres://x"}},
		{"short secret in production", map[string]string{"DATABASE_URL": "postgres://x", "JWT_SECRET": "short"}},
		{"bad ttl", map[string]string{"DATABASE_URL": "postgres://x", "JWT_SECRET": "0123456789abcdef", "JWT_TTL": "soon"}},
		{"bad port", map[string]string{"DATABASE_URL": "postgres://x", "JWT_SECRET": "0123456789abcdef", "PORT": "http"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(tt.env))
			assert.Error(t, err)
		})
	}
}
