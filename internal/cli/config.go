package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/cadkit/cadkit/pkg/cad"
)

// Config is the on-disk CLI configuration (~/.config/cadkit/config.toml).
//
// Example:
//
//	drawing = "shopfloor.json"
//	host = ""
//
//	[[layers]]
//	name = "Walls"
//	color = "red"
type Config struct {
	// Drawing is the default drawing file.
	Drawing string `toml:"drawing"`

	// Host is the default bridge host URL. Empty means local drawings.
	Host string `toml:"host"`

	// Layers overrides the standard layer palette for `layer init`.
	Layers []LayerConfig `toml:"layers"`
}

// LayerConfig is one palette entry.
type LayerConfig struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// LoadConfig reads the config file at path. A missing file yields a zero
// config; a malformed one is an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// palette resolves the layer palette: config override or the standard set.
func (cfg Config) palette() ([]cad.Layer, error) {
	if len(cfg.Layers) == 0 {
		return nil, nil // nil selects cad.StandardLayers
	}

	layers := make([]cad.Layer, 0, len(cfg.Layers))
	for _, lc := range cfg.Layers {
		color, err := cad.ColorFromName(lc.Color)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", lc.Name, err)
		}
		layers = append(layers, cad.NewLayer(lc.Name, color))
	}
	return layers, nil
}

// configCommand shows the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printKeyValue("config", configPath())
			printKeyValue("drawing", c.drawing)
			if c.host != "" {
				printKeyValue("host", c.host)
			}

			if dir, err := cacheDir(); err == nil {
				printKeyValue("cache", dir)
			}

			names := make([]string, 0, len(c.config.Layers))
			for _, l := range c.config.Layers {
				names = append(names, l.Name)
			}
			sort.Strings(names)
			if len(names) > 0 {
				printNewline()
				printKeyValue("palette", strings.Join(names, ", "))
			}
			return nil
		},
	}
}
