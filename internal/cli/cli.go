// Package cli implements the linguist command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linguist/pkg/buildinfo"
	"github.com/matzehuels/linguist/pkg/cache"
	errs "github.com/matzehuels/linguist/pkg/errors"
	lingclient "github.com/matzehuels/linguist/pkg/integrations/linguist"
	"github.com/matzehuels/linguist/pkg/linguist"
	"github.com/matzehuels/linguist/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "linguist"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	verbose     bool
	configPath  string
	datasetPath string
	config      *Config
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Linguist looks up programming language metadata",
		Long: `Linguist answers questions about programming languages from GitHub Linguist's languages.yml: which language owns a file extension, what a name or alias refers to, which language a CodeMirror mode belongs to.

Exit status:
  0    success
  1    lookup miss or other failure
  2    invalid flags, arguments or config
  3    invalid dataset
  4    network failure or timeout
  130  interrupted`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errs.Wrap(errs.ErrCodeInvalidInput, err, "%s", cmd.CommandPath())
	})

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/linguist/config.toml)")
	flags.StringVar(&c.datasetPath, "dataset", "", "languages.yml to use instead of the embedded dataset")

	root.AddCommand(c.nameCommand())
	root.AddCommand(c.extCommand())
	root.AddCommand(c.modeCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup runs before every command: it applies the log level, reads the
// config file and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
		observability.NewLogHooks(c.Logger).Register()
	}

	path := c.configPath
	if path == "" {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			c.Logger.Debug("no config directory", "error", err)
			path = ""
		}
	}
	if path != "" {
		cfg, err := loadConfig(path, c.configPath != "")
		if err != nil {
			return err
		}
		c.config = cfg
	}
	if c.datasetPath != "" {
		c.config.Dataset.Path = c.datasetPath
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Dataset
// =============================================================================

// index returns the lookup index for this invocation: the configured
// dataset file if any, the embedded dataset otherwise.
func (c *CLI) index(ctx context.Context) (*linguist.Index, error) {
	path := c.config.Dataset.Path
	if path == "" {
		return linguist.Default(), nil
	}
	if err := errs.ValidateFilePath(path); err != nil {
		return nil, err
	}

	start := time.Now()
	idx, err := linguist.LoadFile(path)
	n := 0
	if idx != nil {
		n = idx.Len()
	}
	observability.Dataset().OnDatasetLoad(ctx, path, n, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("loaded dataset", "path", path, "languages", n)
	return idx, nil
}

// datasetClient builds the upstream dataset client over the configured cache.
func (c *CLI) datasetClient(noCache bool) (*lingclient.Client, cache.Cache, error) {
	ttl, err := c.config.Dataset.TTLDuration()
	if err != nil {
		return nil, nil, err
	}
	backend, err := c.newCache(noCache)
	if err != nil {
		return nil, nil, err
	}
	return lingclient.NewClient(backend, ttl, c.config.Dataset.URL), backend, nil
}

// =============================================================================
// Cache
// =============================================================================

// newCache opens the configured cache backend. noCache forces the null cache.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch c.config.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		if err := errs.ValidateRedisURL(c.config.Cache.RedisURL); err != nil {
			return nil, err
		}
		return cache.NewRedisCache(c.config.Cache.RedisURL)
	default:
		dir, err := c.cacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	}
}

// cacheDir returns the file cache directory: the configured one, or the
// XDG default (~/.cache/linguist/).
func (c *CLI) cacheDir() (string, error) {
	if c.config.Cache.Dir != "" {
		return c.config.Cache.Dir, nil
	}
	return defaultCacheDir()
}

// =============================================================================
// Paths
// =============================================================================

func defaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
