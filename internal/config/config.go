package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	DB   DBConfig
	Auth AuthConfig

	CORSAllowedOrigins []string
}

type DBConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any key lookup, which keeps tests off the
// real environment.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Env:  get("APP_ENV", "production"),
		Port: get("PORT", "5000"),
		DB: DBConfig{
			URL: get("DATABASE_URL", ""),
		},
		Auth: AuthConfig{
			JWTSecret: get("JWT_SECRET", ""),
		},
	}

	var err error
	if cfg.DB.MaxOpenConns, err = atoi(get("DB_MAX_OPEN_CONNS", "25"), "DB_MAX_OPEN_CONNS"); err != nil {
		return nil, err
	}
	if cfg.DB.MaxIdleConns, err = atoi(get("DB_MAX_IDLE_CONNS", "5"), "DB_MAX_IDLE_CONNS"); err != nil {
		return nil, err
	}
	if cfg.DB.ConnMaxLifetime, err = time.ParseDuration(get("DB_CONN_MAX_LIFETIME", "30m")); err != nil {
		return nil, fmt.Errorf("DB_CONN_MAX_LIFETIME: %w", err)
	}
	if cfg.DB.AutoMigrate, err = strconv.ParseBool(get("AUTO_MIGRATE", "true")); err != nil {
		return nil, fmt.Errorf("AUTO_MIGRATE: %w", err)
	}
	if cfg.Auth.TokenTTL, err = time.ParseDuration(get("JWT_TTL", "168h")); err != nil {
		return nil, fmt.Errorf("JWT_TTL: %w", err)
	}

	for _, origin := range strings.Split(get("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DB.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if !c.IsDevelopment() && len(c.Auth.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 bytes")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT: %w", err)
	}
	return nil
}

func atoi(s, key string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
