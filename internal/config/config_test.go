package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/window"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}

	opts, err := cfg.Window.Options()
	if err != nil {
		t.Fatalf("Options() error: %v", err)
	}
	if opts.Policy != window.Fixed {
		t.Errorf("Policy = %v, want Fixed", opts.Policy)
	}
	if opts.Position == nil || opts.Position.Top != length.Percent(10) {
		t.Errorf("Position = %+v, want 10%%", opts.Position)
	}
	if opts.Size == nil || opts.Size.Width != length.Px(480) || opts.Size.Height != length.Px(320) {
		t.Errorf("Size = %+v, want 480px x 320px", opts.Size)
	}
}

func TestLoadConfigFromBytesYAML(t *testing.T) {
	yamlConfig := `
window:
  policy: relative
  sizerThickness: 8
  minWidth: 150
  top: calc(50% - 20px)
  left: 2vw
  width: 40%
  height: 30vh
display:
  width: 1920
  height: 1080
settings:
  debug: true
`

	cfg, err := LoadConfigFromBytes([]byte(yamlConfig), "yaml")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() error: %v", err)
	}

	if cfg.Display.Width != 1920 || cfg.Display.Height != 1080 {
		t.Errorf("Display = %+v, want 1920x1080", cfg.Display)
	}
	if cfg.Display.ContentWidth != 300 {
		t.Errorf("ContentWidth = %v, want default 300", cfg.Display.ContentWidth)
	}
	if cfg.Window.BorderRadius != window.DefaultBorderRadius {
		t.Errorf("BorderRadius = %v, want default", cfg.Window.BorderRadius)
	}
	if !cfg.Settings.Debug || cfg.Settings.SocketPath != DefaultSocketPath {
		t.Errorf("Settings = %+v", cfg.Settings)
	}

	opts, err := cfg.Window.Options()
	if err != nil {
		t.Fatalf("Options() error: %v", err)
	}
	if opts.Policy != window.Relative {
		t.Errorf("Policy = %v, want Relative", opts.Policy)
	}
	if opts.Sizer != 8 || opts.MinWidth != 150 {
		t.Errorf("Sizer = %v MinWidth = %v", opts.Sizer, opts.MinWidth)
	}
	if want := (length.Expr{Px: -20, Pct: 50}); opts.Position.Top != want {
		t.Errorf("Top = %v, want %v", opts.Position.Top, want)
	}
	if opts.Size.Height != length.Vh(30) {
		t.Errorf("Height = %v, want 30vh", opts.Size.Height)
	}
}

func TestLoadConfigFromBytesJSON(t *testing.T) {
	jsonConfig := `{
		"window": {"policy": "Auto", "top": "0px", "left": "0px", "width": "", "height": ""},
		"settings": {"socketPath": "/tmp/test.sock"}
	}`

	cfg, err := LoadConfigFromBytes([]byte(jsonConfig), "json")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() error: %v", err)
	}

	opts, err := cfg.Window.Options()
	if err != nil {
		t.Fatalf("Options() error: %v", err)
	}
	if opts.Policy != window.Auto {
		t.Errorf("Policy = %v, want Auto", opts.Policy)
	}
	if opts.Size != nil {
		t.Errorf("Size = %+v, want nil", opts.Size)
	}
	if cfg.Settings.SocketPath != "/tmp/test.sock" {
		t.Errorf("SocketPath = %q", cfg.Settings.SocketPath)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
		is     error
	}{
		{"bad policy", func(c *Config) { c.Window.Policy = "Huge" }, "policy", window.ErrInvalidPolicy},
		{"bad length", func(c *Config) { c.Window.Width = "40em" }, "invalid width", length.ErrSyntax},
		{"tolerant junk", func(c *Config) { c.Window.Top = "10%px" }, "invalid top", length.ErrSyntax},
		{"half position", func(c *Config) { c.Window.Left = "" }, "set together", nil},
		{"half size", func(c *Config) { c.Window.Height = "" }, "set together", nil},
		{"negative sizer", func(c *Config) { c.Window.SizerThickness = -1 }, "sizer", nil},
		{"negative radius", func(c *Config) { c.Window.BorderRadius = -1 }, "radius", nil},
		{"negative minimum", func(c *Config) { c.Window.MinHeight = -5 }, "minimum", nil},
		{"zero viewport", func(c *Config) { c.Display.Width = 0 }, "viewport", nil},
		{"negative content", func(c *Config) { c.Display.ContentHeight = -1 }, "content", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.want)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Validate() error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestLoadConfigFromBytesErrors(t *testing.T) {
	if _, err := LoadConfigFromBytes([]byte("window: ["), "yaml"); err == nil {
		t.Error("malformed YAML accepted")
	}
	if _, err := LoadConfigFromBytes([]byte("{}"), "toml"); err == nil {
		t.Error("unsupported format accepted")
	}
	if _, err := LoadConfigFromBytes([]byte("window:\n  policy: sideways\n"), "yaml"); err == nil {
		t.Error("invalid policy accepted")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "floatwin.yaml")
	if err := os.WriteFile(path, []byte("window:\n  policy: Auto\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Window.Policy != "Auto" {
		t.Errorf("Policy = %q, want Auto", cfg.Window.Policy)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadConfig(missing) expected error")
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			if err := WriteDefault(path, false); err != nil {
				t.Fatalf("WriteDefault() error: %v", err)
			}
			if err := WriteDefault(path, false); err == nil {
				t.Error("WriteDefault() overwrote an existing file")
			}
			if err := WriteDefault(path, true); err != nil {
				t.Errorf("WriteDefault(force) error: %v", err)
			}

			cfg, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() error: %v", err)
			}
			if *cfg != *Default() {
				t.Errorf("loaded %+v, want defaults", cfg)
			}
		})
	}
}
