package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cadkit/cadkit/pkg/cad"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `drawing = "shopfloor.json"
host = "http://cad-host:8437"

[[layers]]
name = "Walls"
color = "red"

[[layers]]
name = "Fixtures"
color = "cyan"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Drawing != "shopfloor.json" {
		t.Errorf("Drawing = %q", cfg.Drawing)
	}
	if cfg.Host != "http://cad-host:8437" {
		t.Errorf("Host = %q", cfg.Host)
	}
	if len(cfg.Layers) != 2 || cfg.Layers[1].Name != "Fixtures" {
		t.Errorf("Layers = %v", cfg.Layers)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.Drawing != "" || cfg.Host != "" || len(cfg.Layers) != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("drawing = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfigPalette(t *testing.T) {
	var cfg Config

	layers, err := cfg.palette()
	if err != nil {
		t.Fatalf("empty palette failed: %v", err)
	}
	if layers != nil {
		t.Errorf("empty config should yield nil palette, got %v", layers)
	}

	cfg.Layers = []LayerConfig{
		{Name: "Walls", Color: "red"},
		{Name: "Fixtures", Color: "cyan"},
	}
	layers, err = cfg.palette()
	if err != nil {
		t.Fatalf("palette failed: %v", err)
	}
	if len(layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(layers))
	}
	if layers[0].Name != "Walls" || layers[0].Color != cad.ColorRed {
		t.Errorf("layers[0] = %+v", layers[0])
	}

	cfg.Layers = []LayerConfig{{Name: "Bad", Color: "chartreuse"}}
	if _, err := cfg.palette(); err == nil {
		t.Error("expected error for unknown color name")
	}
}
