package models

import (
	"encoding/json"
	"fmt"

	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

// WindowState is the wire representation of a window
type WindowState struct {
	ID             string           `json:"id"`
	Policy         string           `json:"policy"`
	Geometry       GeometryState    `json:"geometry"`
	Bounds         types.Rect       `json:"bounds"`
	Viewport       ViewportState    `json:"viewport"`
	Chrome         ChromeState      `json:"chrome"`
	Snapshot       *window.Snapshot `json:"snapshot,omitempty"`
	RestoreAllowed bool             `json:"restoreAllowed"`
	Dragging       bool             `json:"dragging"`
	Closed         bool             `json:"closed"`
}

// GeometryState holds the geometry in policy units as CSS text
type GeometryState struct {
	Top       string  `json:"top"`
	Left      string  `json:"left"`
	Width     string  `json:"width"`
	Height    string  `json:"height"`
	MinWidth  float64 `json:"minWidth"`
	MinHeight float64 `json:"minHeight"`
}

type ViewportState struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ChromeState struct {
	NavBar       float64 `json:"navBar"`
	Sizer        float64 `json:"sizer"`
	BorderRadius float64 `json:"borderRadius"`
}

// NewWindowState captures the current state of w
func NewWindowState(w *window.Window) *WindowState {
	g := w.Geometry()
	vp := w.Viewport()
	c := w.Chrome()

	return &WindowState{
		ID:     w.ID(),
		Policy: string(w.Policy()),
		Geometry: GeometryState{
			Top:       g.Top.String(),
			Left:      g.Left.String(),
			Width:     g.Width.String(),
			Height:    g.Height.String(),
			MinWidth:  g.MinWidth,
			MinHeight: g.MinHeight,
		},
		Bounds:   w.Bounds(),
		Viewport: ViewportState{Width: vp.ViewportWidth, Height: vp.ViewportHeight},
		Chrome: ChromeState{
			NavBar:       c.NavBar,
			Sizer:        c.Sizer,
			BorderRadius: c.BorderRadius,
		},
		Snapshot:       w.Snapshot(),
		RestoreAllowed: w.RestoreAllowed(),
		Dragging:       w.Dragging(),
		Closed:         w.Closed(),
	}
}

// ToMap converts the state into a response result
func (s *WindowState) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	return m, nil
}

// ParseWindowState parses a response result into a WindowState
func ParseWindowState(result map[string]interface{}) (*WindowState, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}

	var state WindowState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	return &state, nil
}

// FormatFrame returns a formatted string representation of the rendered box
func (s *WindowState) FormatFrame() string {
	b := s.Bounds
	return fmt.Sprintf("%.0fx%.0f @ (%.0f, %.0f)", b.Width, b.Height, b.X, b.Y)
}
