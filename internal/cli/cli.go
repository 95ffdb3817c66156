// Package cli implements the cadkit command-line interface.
//
// This package provides commands for drafting against a CAD document: layer
// management, entity creation, block and group handling, batch edits, tiling,
// SVG previews, and a bridge server mode. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layer: Create, list, and configure layers
//   - draw: Add lines, circles, ellipses, rectangles, text, and dimensions
//   - block: Manage block definitions, references, and attributes
//   - group: Manage named entity groups
//   - edit: Move, scale, rotate, clone, align, and distribute entities
//   - tile: Repeat a block along a span
//   - preview: Render the drawing to SVG
//   - serve: Expose the drawing over the bridge HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/cadkit/cadkit/pkg/buildinfo"
	"github.com/cadkit/cadkit/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cadkit"

	// defaultDrawing is the drawing file used when neither the flag nor the
	// config names one.
	defaultDrawing = "drawing.json"
)

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

	// Persistent flags, bound on the root command.
	drawing string
	host    string
	noSave  bool

	config Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "cadkit",
		Short:        "Cadkit automates drafting against a CAD host",
		Long: `Cadkit is a drafting automation tool. It drives a CAD document through a
uniform session API: layers, entities, blocks, groups, and batch operations
like tiling a block along a wall. Documents live in local drawing files or
behind a remote bridge host.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(configPath())
			if err != nil {
				return err
			}
			c.config = cfg
			if c.drawing == "" {
				c.drawing = cfg.Drawing
			}
			if c.drawing == "" {
				c.drawing = defaultDrawing
			}
			if c.host == "" {
				c.host = cfg.Host
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVarP(&c.drawing, "drawing", "d", "", "drawing file to operate on")
	root.PersistentFlags().StringVar(&c.host, "host", "", "bridge host URL instead of a local drawing")
	root.PersistentFlags().BoolVar(&c.noSave, "no-save", false, "do not write changes back to the drawing file")

	// Register all subcommands
	root.AddCommand(c.layerCommand())
	root.AddCommand(c.drawCommand())
	root.AddCommand(c.blockCommand())
	root.AddCommand(c.groupCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.tileCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/cadkit/).
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

// configPath returns the config file path using XDG standard
// (~/.config/cadkit/config.toml).
func configPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
