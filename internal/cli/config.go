package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const DefaultServer = "http://localhost:5000"

type Config struct {
	Server string `toml:"server"`
	Token  string `toml:"token"`
	Email  string `toml:"email"` // last account logged in, for display only
}

// DefaultConfigPath returns ~/.config/fittrack/config.toml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fittrack", "config.toml"), nil
}

// LoadConfig reads the config file; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{Server: DefaultServer}
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if cfg.Server == "" {
		cfg.Server = DefaultServer
	}
	return cfg, nil
}

// SaveConfig writes the config with owner-only permissions since it holds the token.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
