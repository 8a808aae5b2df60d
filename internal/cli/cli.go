// Package cli implements the distrowave command-line interface.
//
// This package provides commands for computing merge waves over a distro
// metadata repository, validating branch references touched by a diff,
// extracting package versions from collection files, and rewriting a
// library's version pin everywhere. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - waves: Clone the metadata repo and compute topologically ordered merge waves
//   - validate: Check that changed version references point at existing remote branches
//   - version: Extract package versions from collection files
//   - bump: Rewrite a library's version pin across all collection files
//   - cache: Manage the remote branch-list cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/distrowave/distrowave/internal/config"
	"github.com/distrowave/distrowave/pkg/buildinfo"
	"github.com/distrowave/distrowave/pkg/cache"
	"github.com/distrowave/distrowave/pkg/gitcli"
)

// appName is the application name used for directories and display.
const appName = "distrowave"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and the user's
// config file applied over the built-in defaults.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: config.Default(),
	}
	if path, err := config.Path(); err == nil {
		if cfg, err := config.Load(path); err == nil {
			c.Config = cfg
		} else {
			c.Logger.Warnf("ignoring config %s: %v", path, err)
		}
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "distrowave computes safe merge waves for distro version bumps",
		Long:         `distrowave operates on a directory of YAML collection files describing a dependency graph of packages. It computes topologically ordered merge waves for downstream bumps, validates version references against remote branches, and bulk-rewrites version pins.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}

	// Register all subcommands
	root.AddCommand(c.wavesCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.bumpCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newGit creates a git client with the configured cache backend.
func (c *CLI) newGit(ctx context.Context, noCache bool) *gitcli.Client {
	ttl := time.Duration(c.Config.Cache.TTLHours) * time.Hour
	return gitcli.New(c.newCache(ctx, noCache), ttl)
}

func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	switch c.Config.Cache.Backend {
	case "none":
		return cache.NewNullCache()
	case "redis":
		rc, err := cache.NewRedisCache(ctx, c.Config.Cache.RedisAddr)
		if err != nil {
			c.Logger.Warnf("redis cache unavailable, continuing without: %v", err)
			return cache.NewNullCache()
		}
		return rc
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return cache.NewNullCache()
		}
		return fc
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/distrowave/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
