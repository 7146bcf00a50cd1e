package window

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/types"
)

var (
	ErrInvalidPolicy  = errors.New("invalid size policy")
	ErrClosed         = errors.New("window is closed")
	ErrDockOutOfRange = errors.New("dock position out of range")
)

const (
	DefaultSizer        = 5.0
	DefaultBorderRadius = 5.0

	// positionButtons is the number of quick-layout buttons in the title bar;
	// the minimum width keeps all of them visible.
	positionButtons = 6
)

// Surface is the rendering collaborator a Window draws through
type Surface interface {
	// Viewport returns the reference sizes lengths resolve against
	Viewport() length.Context
	// Bounds returns the box as currently rendered
	Bounds() types.Rect
	// NaturalSize returns the size the window would take to fit its content
	NaturalSize() (width, height float64)
	// Apply writes a new frame
	Apply(frame Frame)
	// Detach removes the window from its host
	Detach()
}

// Frame is everything a Surface needs to render the window
type Frame struct {
	Top       length.Expr
	Left      length.Expr
	Width     length.Expr
	Height    length.Expr
	MinWidth  float64
	MinHeight float64
	Topmost   bool
}

// Resolve returns the pixel box a frame renders to, honoring the minimum size
func (f Frame) Resolve(ctx length.Context) types.Rect {
	return types.Rect{
		X:      f.Left.Pixels(length.AxisWidth, ctx),
		Y:      f.Top.Pixels(length.AxisHeight, ctx),
		Width:  max(f.Width.Pixels(length.AxisWidth, ctx), f.MinWidth),
		Height: max(f.Height.Pixels(length.AxisHeight, ctx), f.MinHeight),
	}
}

// Geometry is the window's position and size in policy units
type Geometry struct {
	Top       length.Expr
	Left      length.Expr
	Width     length.Expr
	Height    length.Expr
	MinWidth  float64 // pixels
	MinHeight float64 // pixels
}

// Pixels resolves the geometry without applying minimums
func (g Geometry) Pixels(ctx length.Context) types.Rect {
	return types.Rect{
		X:      g.Left.Pixels(length.AxisWidth, ctx),
		Y:      g.Top.Pixels(length.AxisHeight, ctx),
		Width:  g.Width.Pixels(length.AxisWidth, ctx),
		Height: g.Height.Pixels(length.AxisHeight, ctx),
	}
}

// Position is a quick-layout target point
type Position struct {
	Top  length.Expr
	Left length.Expr
}

// Size is a quick-layout target size
type Size struct {
	Width  length.Expr
	Height length.Expr
}

// Anchor shifts a target position by a percentage of the window's own size.
// {50, 50} centers the window on the position.
type Anchor struct {
	X float64
	Y float64
}

// Chrome holds the derived layout constants of the window decoration
type Chrome struct {
	NavBar       float64 // title bar height
	Sizer        float64 // resize handle thickness
	BorderRadius float64
}

// Options configures a new Window
type Options struct {
	Policy       Policy
	Sizer        float64
	BorderRadius float64
	MinWidth     float64 // overrides the derived minimum when > 0
	MinHeight    float64 // overrides the derived minimum when > 0
	Position     *Position
	Size         *Size
}

// Window is a floating window's geometry engine.
// It is not safe for concurrent use; one goroutine owns it.
type Window struct {
	id      string
	surface Surface
	opts    Options

	policy  Policy
	geom    Geometry
	sized   bool
	topmost bool
	chrome  Chrome

	snapshot     *Snapshot
	allowRestore bool
	drag         *DragSession
	closed       bool
}

// New creates a window on the surface and applies the basic floating style
func New(surface Surface, opts Options) (*Window, error) {
	if surface == nil {
		return nil, errors.New("window: nil surface")
	}
	if opts.Policy == "" {
		opts.Policy = Fixed
	}
	if !opts.Policy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPolicy, string(opts.Policy))
	}
	if opts.Sizer <= 0 {
		opts.Sizer = DefaultSizer
	}
	if opts.BorderRadius < 0 {
		opts.BorderRadius = 0
	}

	w := &Window{
		id:      uuid.New().String(),
		surface: surface,
		opts:    opts,
		policy:  opts.Policy,
		geom:    Geometry{Top: length.Px(0), Left: length.Px(0)},
	}
	if opts.Position != nil {
		w.geom.Top = opts.Position.Top
		w.geom.Left = opts.Position.Left
	}
	if opts.Size != nil {
		w.geom.Width = opts.Size.Width
		w.geom.Height = opts.Size.Height
		w.sized = true
	}

	w.deriveLayout()
	if err := w.ApplyBasicFloatingStyle(); err != nil {
		return nil, err
	}

	logging.Debug().
		Str("window", w.id).
		Str("policy", string(w.policy)).
		Float64("minWidth", w.geom.MinWidth).
		Float64("minHeight", w.geom.MinHeight).
		Msg("window created")

	return w, nil
}

// ID returns the window's unique identifier
func (w *Window) ID() string { return w.id }

// Policy returns the active size policy
func (w *Window) Policy() Policy { return w.policy }

// Geometry returns a copy of the current geometry
func (w *Window) Geometry() Geometry { return w.geom }

// Chrome returns the derived decoration constants
func (w *Window) Chrome() Chrome { return w.chrome }

// Frame returns the frame last written to the surface
func (w *Window) Frame() Frame { return w.frame() }

// Bounds returns the box as rendered by the surface
func (w *Window) Bounds() types.Rect { return w.surface.Bounds() }

// Viewport returns the surface's current reference sizes
func (w *Window) Viewport() length.Context { return w.surface.Viewport() }

// Closed reports whether Close has been called
func (w *Window) Closed() bool { return w.closed }

// deriveLayout recomputes the title bar height and minimum size from the viewport
func (w *Window) deriveLayout() {
	vp := w.surface.Viewport()
	navBar := 10 + 0.015*vp.ViewportHeight
	sizer := w.opts.Sizer

	w.chrome = Chrome{
		NavBar:       navBar,
		Sizer:        sizer,
		BorderRadius: w.opts.BorderRadius,
	}

	w.geom.MinWidth = positionButtons*1.5*navBar + 2*sizer
	w.geom.MinHeight = navBar + 2*sizer
	if w.opts.MinWidth > 0 {
		w.geom.MinWidth = w.opts.MinWidth
	}
	if w.opts.MinHeight > 0 {
		w.geom.MinHeight = w.opts.MinHeight
	}
}

func (w *Window) frame() Frame {
	return Frame{
		Top:       w.geom.Top,
		Left:      w.geom.Left,
		Width:     w.geom.Width,
		Height:    w.geom.Height,
		MinWidth:  w.geom.MinWidth,
		MinHeight: w.geom.MinHeight,
		Topmost:   w.topmost,
	}
}

// commit writes the current geometry to the surface
func (w *Window) commit() {
	w.surface.Apply(w.frame())
}

// fixate replaces the geometry with the rendered box in pixels
func (w *Window) fixate() {
	b := w.surface.Bounds()
	w.geom.Top = length.Px(b.Y)
	w.geom.Left = length.Px(b.X)
	w.geom.Width = length.Px(b.Width)
	w.geom.Height = length.Px(b.Height)
	w.sized = true
}

// fixateSize pins an implicit size to the rendered box, keeping the
// configured position
func (w *Window) fixateSize() {
	b := w.surface.Bounds()
	w.geom.Width = length.Px(b.Width)
	w.geom.Height = length.Px(b.Height)
	w.sized = true
}
