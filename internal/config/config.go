package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/window"
)

const (
	DefaultConfigDir  = ".config/floatwin"
	DefaultConfigFile = "config.yaml"
	DefaultSocketPath = "/tmp/floatwin.sock"
)

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Policy:         string(window.Fixed),
			SizerThickness: window.DefaultSizer,
			BorderRadius:   window.DefaultBorderRadius,
			Top:            "10%",
			Left:           "10%",
			Width:          "480px",
			Height:         "320px",
		},
		Display: DisplayConfig{
			Width:         1280,
			Height:        800,
			ContentWidth:  300,
			ContentHeight: 200,
		},
		Settings: Settings{
			SocketPath: DefaultSocketPath,
		},
	}
}

// LoadConfig loads configuration from the specified path or default location.
// If path is empty, uses ~/.config/floatwin/config.yaml, then config.json,
// then the built-in defaults. Values missing from the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		yamlPath := filepath.Join(home, DefaultConfigDir, "config.yaml")
		jsonPath := filepath.Join(home, DefaultConfigDir, "config.json")

		if _, err := os.Stat(yamlPath); err == nil {
			path = yamlPath
		} else if _, err := os.Stat(jsonPath); err == nil {
			path = jsonPath
		} else {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return LoadConfigFromBytes(data, ext)
}

// LoadConfigFromBytes loads configuration from raw bytes.
// format should be "yaml" or "json".
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	cfg := Default()

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Marshal encodes the configuration as "yaml" or "json"
func (c *Config) Marshal(format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(c)
	case "json":
		return json.MarshalIndent(c, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// WriteDefault writes the default configuration to path. An existing file
// is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if path == "" {
		path = GetConfigPath()
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat config file: %w", err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		format = "yaml"
	}
	data, err := Default().Marshal(format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Options converts the window section into window.Options
func (wc *WindowConfig) Options() (window.Options, error) {
	opts := window.Options{
		Sizer:        wc.SizerThickness,
		BorderRadius: wc.BorderRadius,
		MinWidth:     wc.MinWidth,
		MinHeight:    wc.MinHeight,
	}

	if wc.Policy != "" {
		p, err := window.ParsePolicy(wc.Policy)
		if err != nil {
			return window.Options{}, err
		}
		opts.Policy = p
	}

	top, left, err := parsePair(wc.Top, wc.Left, "top", "left")
	if err != nil {
		return window.Options{}, err
	}
	if top != nil {
		opts.Position = &window.Position{Top: *top, Left: *left}
	}

	width, height, err := parsePair(wc.Width, wc.Height, "width", "height")
	if err != nil {
		return window.Options{}, err
	}
	if width != nil {
		opts.Size = &window.Size{Width: *width, Height: *height}
	}

	return opts, nil
}

// parsePair parses two lengths that must be given together
func parsePair(a, b, nameA, nameB string) (*length.Expr, *length.Expr, error) {
	if a == "" && b == "" {
		return nil, nil, nil
	}
	if a == "" || b == "" {
		return nil, nil, fmt.Errorf("%s and %s must be set together", nameA, nameB)
	}

	ea, err := length.ParseStrict(a)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid %s: %w", nameA, err)
	}
	eb, err := length.ParseStrict(b)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid %s: %w", nameB, err)
	}
	return &ea, &eb, nil
}
