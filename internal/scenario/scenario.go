// Package scenario replays scripted pointer and command sequences against
// a window on an in-memory surface.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/floatwin/internal/config"
	"github.com/yourusername/floatwin/internal/types"
)

// DefaultTolerance is the pixel slack allowed by expectations
const DefaultTolerance = 0.01

var ErrInvalidScript = errors.New("invalid scenario")

// Script is a named sequence of steps run against one window
type Script struct {
	Name      string               `yaml:"name"`
	Window    config.WindowConfig  `yaml:"window"`
	Display   config.DisplayConfig `yaml:"display"`
	Tolerance float64              `yaml:"tolerance"`
	Steps     []Step               `yaml:"steps"`
}

// Step holds exactly one action
type Step struct {
	Grab     *PointerStep `yaml:"grab,omitempty"`
	Move     *PointerStep `yaml:"move,omitempty"`
	Release  bool         `yaml:"release,omitempty"`
	Command  string       `yaml:"command,omitempty"` // maximize, minimize, doubleclick, float, close
	Dock     *DockStep    `yaml:"dock,omitempty"`
	Policy   string       `yaml:"policy,omitempty"`
	Viewport *SizeStep    `yaml:"viewport,omitempty"`
	Content  *SizeStep    `yaml:"content,omitempty"`
	Expect   *Expectation `yaml:"expect,omitempty"`
}

// PointerStep is a pointer position; Handle is only read by grab
// and is hit-tested when empty
type PointerStep struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Handle string  `yaml:"handle,omitempty"`
}

type DockStep struct {
	Row      int  `yaml:"row"`
	Col      int  `yaml:"col"`
	Autosize bool `yaml:"autosize"`
}

type SizeStep struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Expectation checks the rendered state; nil fields are not checked
type Expectation struct {
	Policy   string   `yaml:"policy,omitempty"`
	X        *float64 `yaml:"x,omitempty"`
	Y        *float64 `yaml:"y,omitempty"`
	Width    *float64 `yaml:"width,omitempty"`
	Height   *float64 `yaml:"height,omitempty"`
	Snapshot *bool    `yaml:"snapshot,omitempty"`
	Dragging *bool    `yaml:"dragging,omitempty"`
	Closed   *bool    `yaml:"closed,omitempty"`
	// Top, Left, WidthExpr and HeightExpr compare the serialised geometry
	Top        string `yaml:"top,omitempty"`
	Left       string `yaml:"left,omitempty"`
	WidthExpr  string `yaml:"widthExpr,omitempty"`
	HeightExpr string `yaml:"heightExpr,omitempty"`
}

var commands = map[string]bool{
	"maximize":    true,
	"minimize":    true,
	"doubleclick": true,
	"float":       true,
	"close":       true,
}

// Load reads a script from a YAML file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes and validates a YAML script. Window and display
// settings missing from the script take the configuration defaults.
func Parse(data []byte) (*Script, error) {
	def := config.Default()
	s := &Script{
		Window:    def.Window,
		Display:   def.Display,
		Tolerance: DefaultTolerance,
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every step holds exactly one known action
func (s *Script) Validate() error {
	cfg := config.Config{Window: s.Window, Display: s.Display}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if s.Tolerance < 0 {
		return fmt.Errorf("%w: negative tolerance", ErrInvalidScript)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScript)
	}

	for i, st := range s.Steps {
		if n := st.actions(); n != 1 {
			return fmt.Errorf("%w: step %d has %d actions, want 1", ErrInvalidScript, i+1, n)
		}
		if st.Command != "" && !commands[st.Command] {
			return fmt.Errorf("%w: step %d: unknown command %q", ErrInvalidScript, i+1, st.Command)
		}
		if st.Grab != nil && st.Grab.Handle != "" {
			if _, ok := types.ParseHandle(st.Grab.Handle); !ok {
				return fmt.Errorf("%w: step %d: unknown handle %q", ErrInvalidScript, i+1, st.Grab.Handle)
			}
		}
	}
	return nil
}

func (st *Step) actions() int {
	n := 0
	for _, set := range []bool{
		st.Grab != nil,
		st.Move != nil,
		st.Release,
		st.Command != "",
		st.Dock != nil,
		st.Policy != "",
		st.Viewport != nil,
		st.Content != nil,
		st.Expect != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Action returns a short description of the step
func (st *Step) Action() string {
	switch {
	case st.Grab != nil:
		h := st.Grab.Handle
		if h == "" {
			h = "auto"
		}
		return fmt.Sprintf("grab %s at %g,%g", h, st.Grab.X, st.Grab.Y)
	case st.Move != nil:
		return fmt.Sprintf("move to %g,%g", st.Move.X, st.Move.Y)
	case st.Release:
		return "release"
	case st.Command != "":
		return st.Command
	case st.Dock != nil:
		return fmt.Sprintf("dock %d,%d autosize=%v", st.Dock.Row, st.Dock.Col, st.Dock.Autosize)
	case st.Policy != "":
		return "policy " + st.Policy
	case st.Viewport != nil:
		return fmt.Sprintf("viewport %gx%g", st.Viewport.Width, st.Viewport.Height)
	case st.Content != nil:
		return fmt.Sprintf("content %gx%g", st.Content.Width, st.Content.Height)
	case st.Expect != nil:
		return "expect"
	}
	return ""
}
