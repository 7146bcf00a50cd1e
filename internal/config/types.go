package config

// Config is the root configuration structure
type Config struct {
	Window   WindowConfig  `yaml:"window" json:"window"`
	Display  DisplayConfig `yaml:"display" json:"display"`
	Settings Settings      `yaml:"settings" json:"settings"`
}

// WindowConfig is the initial state of the floating window.
// Lengths use CSS syntax: "12px", "10%", "calc(50% - 20px)".
type WindowConfig struct {
	Policy         string  `yaml:"policy" json:"policy"` // Auto, Fixed or Relative
	SizerThickness float64 `yaml:"sizerThickness" json:"sizerThickness"`
	BorderRadius   float64 `yaml:"borderRadius" json:"borderRadius"`
	MinWidth       float64 `yaml:"minWidth" json:"minWidth"`   // 0 derives from the viewport
	MinHeight      float64 `yaml:"minHeight" json:"minHeight"` // 0 derives from the viewport
	Top            string  `yaml:"top,omitempty" json:"top,omitempty"`
	Left           string  `yaml:"left,omitempty" json:"left,omitempty"`
	Width          string  `yaml:"width,omitempty" json:"width,omitempty"`
	Height         string  `yaml:"height,omitempty" json:"height,omitempty"`
}

// DisplayConfig is the simulated viewport used by in-memory hosts
type DisplayConfig struct {
	Width         float64 `yaml:"width" json:"width"`
	Height        float64 `yaml:"height" json:"height"`
	ContentWidth  float64 `yaml:"contentWidth" json:"contentWidth"`
	ContentHeight float64 `yaml:"contentHeight" json:"contentHeight"`
}

// Settings contains global application settings
type Settings struct {
	SocketPath string `yaml:"socketPath" json:"socketPath"`
	Debug      bool   `yaml:"debug" json:"debug"`
}
