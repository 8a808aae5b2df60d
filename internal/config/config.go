// Package config loads the optional distrowave configuration file.
//
// The file lives at ~/.config/distrowave/config.toml (or under
// XDG_CONFIG_HOME) and overrides the built-in defaults. Every command-line
// flag still wins over the file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultRepo is the distro metadata repository cloned when neither the
// config file nor --repo overrides it.
const DefaultRepo = "https://github.com/gazebo-tooling/gazebodistro.git"

// Config holds the user-tunable defaults.
type Config struct {
	// Repo is the distro metadata repository URL to clone.
	Repo string `toml:"repo"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects the backend for remote branch-list caching.
type CacheConfig struct {
	// Backend is one of "file", "redis", or "none".
	Backend string `toml:"backend"`

	// TTLHours is the entry lifetime. Zero means the built-in default.
	TTLHours int `toml:"ttl_hours"`

	// RedisAddr is the host:port of the redis backend.
	RedisAddr string `toml:"redis_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Repo: DefaultRepo,
		Cache: CacheConfig{
			Backend:   "file",
			TTLHours:  24,
			RedisAddr: "localhost:6379",
		},
	}
}

// Path returns the config file location following the XDG convention.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "distrowave", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "distrowave", "config.toml"), nil
}

// Load reads the config file at path over the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
