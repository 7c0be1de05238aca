package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrNotConfigured is returned when no config file exists yet.
var ErrNotConfigured = errors.New("ccactl is not configured; run 'ccactl configure' first")

const configFileName = "config.json"

// Config holds the CLI-side settings required for a device-flow login.
type Config struct {
	SSOStartURL string `json:"sso_start_url" yaml:"sso_start_url"`
	SSORegion   string `json:"sso_region" yaml:"sso_region"`
	AccountID   string `json:"account_id" yaml:"account_id"`
	RoleName    string `json:"role_name" yaml:"role_name"`
}

// Complete reports whether every field needed for login is set.
func (c *Config) Complete() bool {
	return c.SSOStartURL != "" && c.SSORegion != "" && c.AccountID != "" && c.RoleName != ""
}

// Store reads and writes the CLI configuration file. The filesystem is
// injected so tests can use afero's in-memory implementation.
type Store struct {
	fs  afero.Fs
	dir string
}

func NewStore(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// DefaultDir returns the per-user configuration directory (~/.ccactl).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".ccactl"), nil
}

// Load reads the configuration. The file is JSON by default but YAML is
// accepted for hand-edited configs.
func (s *Store) Load() (*Config, error) {
	path := filepath.Join(s.dir, configFileName)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}
	return &cfg, nil
}

// Save writes the configuration with owner-only permissions.
func (s *Store) Save(cfg *Config) error {
	if err := s.fs.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	path := filepath.Join(s.dir, configFileName)
	if err := afero.WriteFile(s.fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
