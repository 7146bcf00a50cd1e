package mcp

import (
	"github.com/yourusername/floatwin/internal/window"
)

// WindowOutput is the window state every tool replies with.
// Lengths are CSS text in policy units; the box is in pixels.
type WindowOutput struct {
	ID        string          `json:"id"`
	Policy    string          `json:"policy"`
	Top       string          `json:"top"`
	Left      string          `json:"left"`
	Width     string          `json:"width"`
	Height    string          `json:"height"`
	X         float64         `json:"x"`
	Y         float64         `json:"y"`
	PixelW    float64         `json:"pixel_width"`
	PixelH    float64         `json:"pixel_height"`
	MinWidth  float64         `json:"min_width"`
	MinHeight float64         `json:"min_height"`
	Snapshot  *SnapshotOutput `json:"snapshot,omitempty"`
	Dragging  bool            `json:"dragging"`
	Closed    bool            `json:"closed"`
	Accepted  *bool           `json:"accepted,omitempty"`
}

// SnapshotOutput is the geometry saved before a special layout
type SnapshotOutput struct {
	Policy string `json:"policy"`
	Top    string `json:"top"`
	Left   string `json:"left"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

func newWindowOutput(w *window.Window) WindowOutput {
	g := w.Geometry()
	b := w.Bounds()
	out := WindowOutput{
		ID:        w.ID(),
		Policy:    string(w.Policy()),
		Top:       g.Top.String(),
		Left:      g.Left.String(),
		Width:     g.Width.String(),
		Height:    g.Height.String(),
		X:         b.X,
		Y:         b.Y,
		PixelW:    b.Width,
		PixelH:    b.Height,
		MinWidth:  g.MinWidth,
		MinHeight: g.MinHeight,
		Dragging:  w.Dragging(),
		Closed:    w.Closed(),
	}
	if s := w.Snapshot(); s != nil {
		out.Snapshot = &SnapshotOutput{
			Policy: string(s.Policy),
			Top:    s.Top.String(),
			Left:   s.Left.String(),
			Width:  s.Width.String(),
			Height: s.Height.String(),
		}
	}
	return out
}

// GetGeometryInput is the input for the get_geometry tool.
type GetGeometryInput struct{}

// SetPolicyInput is the input for the set_policy tool.
type SetPolicyInput struct {
	Policy string `json:"policy" jsonschema:"Size policy: Auto, Fixed or Relative (case-insensitive)"`
}

// CommandInput is the input for argument-free window commands.
type CommandInput struct{}

// DockInput is the input for the dock tool.
type DockInput struct {
	Row      int  `json:"row" jsonschema:"Grid row 0-2 (top, middle, bottom)"`
	Col      int  `json:"col" jsonschema:"Grid column 0-2 (left, center, right)"`
	Autosize bool `json:"autosize,omitempty" jsonschema:"Size the window to its grid cell"`
}

// FixedStyleInput is the input for the set_fixed_style tool.
type FixedStyleInput struct {
	Top     string  `json:"top,omitempty" jsonschema:"Top as a CSS length, e.g. 10% or calc(50% - 20px). Set together with left."`
	Left    string  `json:"left,omitempty" jsonschema:"Left as a CSS length. Set together with top."`
	Width   string  `json:"width,omitempty" jsonschema:"Width as a CSS length. Set together with height."`
	Height  string  `json:"height,omitempty" jsonschema:"Height as a CSS length. Set together with width."`
	AnchorX float64 `json:"anchor_x,omitempty" jsonschema:"Shift left by this percentage of the window width (50 centers)"`
	AnchorY float64 `json:"anchor_y,omitempty" jsonschema:"Shift up by this percentage of the window height (50 centers)"`
}

// DragInput is the input for the drag tool.
type DragInput struct {
	FromX  float64 `json:"from_x" jsonschema:"Pointer x where the button is pressed"`
	FromY  float64 `json:"from_y" jsonschema:"Pointer y where the button is pressed"`
	ToX    float64 `json:"to_x" jsonschema:"Pointer x where the button is released"`
	ToY    float64 `json:"to_y" jsonschema:"Pointer y where the button is released"`
	Handle string  `json:"handle,omitempty" jsonschema:"Force a handle (title, top, bottom-right, ...) instead of hit-testing from_x/from_y"`
	Steps  int     `json:"steps,omitempty" jsonschema:"Number of intermediate pointer moves (default 1)"`
}

// SizeInput is the input for the resize tools.
type SizeInput struct {
	Width  float64 `json:"width" jsonschema:"Width in pixels"`
	Height float64 `json:"height" jsonschema:"Height in pixels"`
}
