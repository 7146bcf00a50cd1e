package window

import (
	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/types"
)

// DragSession is the reference frame of an active drag
type DragSession struct {
	PointerX float64 // pointer at grab time
	PointerY float64
	LastX    float64 // pointer at the previous move
	LastY    float64

	Top    float64 // rendered box at grab time, rebased on restore
	Left   float64
	Width  float64
	Height float64

	SumX float64 // accumulated per-event displacement
	SumY float64

	Mods types.Modifiers
}

// Dragging reports whether a drag session is active
func (w *Window) Dragging() bool { return w.drag != nil }

// Drag returns a copy of the active session, or nil
func (w *Window) Drag() *DragSession {
	if w.drag == nil {
		return nil
	}
	d := *w.drag
	return &d
}

// Grab starts a drag at p. A second grab while dragging is rejected.
func (w *Window) Grab(p types.Point, mods types.Modifiers) bool {
	if w.closed || w.drag != nil {
		logging.Debug().Str("window", w.id).Msg("grab rejected")
		return false
	}

	// Resizing an Auto window makes no sense; pin its size first.
	if w.policy == Auto && mods.Resizes() {
		w.fixate()
		w.setPolicy(Fixed)
	}

	b := w.surface.Bounds()
	w.drag = &DragSession{
		PointerX: p.X,
		PointerY: p.Y,
		LastX:    p.X,
		LastY:    p.Y,
		Top:      b.Y,
		Left:     b.X,
		Width:    b.Width,
		Height:   b.Height,
		Mods:     mods,
	}

	logging.Debug().
		Str("window", w.id).
		Float64("x", p.X).
		Float64("y", p.Y).
		Interface("mods", mods).
		Msg("grab")
	return true
}

// GrabHandle starts a drag on a chrome handle. Grabbing the title bar
// opens the restore gate so the drag can pull a maximized window back out.
func (w *Window) GrabHandle(p types.Point, h types.Handle) bool {
	switch h {
	case types.HandleNone:
		return false
	case types.HandleTitle:
		if w.closed || w.drag != nil {
			return false
		}
		w.allowRestore = true
	}
	return w.Grab(p, h.Modifiers())
}

// Move updates the geometry for a pointer at p. No-op without a session.
func (w *Window) Move(p types.Point) bool {
	d := w.drag
	if d == nil || w.closed {
		return false
	}

	if w.policy != Auto && w.restore(true, false, true) {
		w.rebase(d)
	}

	d.SumX += p.X - d.LastX
	d.SumY += p.Y - d.LastY
	d.LastX, d.LastY = p.X, p.Y

	m := d.Mods
	top := d.Top + float64(m.Top)*d.SumY
	left := d.Left + float64(m.Left)*d.SumX

	dx := p.X - d.PointerX
	if m.Left != 0 {
		dx = d.SumX
	}
	dy := p.Y - d.PointerY
	if m.Top != 0 {
		dy = d.SumY
	}
	width := d.Width + float64(m.Width)*dx
	height := d.Height + float64(m.Height)*dy

	left, width = clampAnchored(left, width, w.geom.MinWidth, movesLeftEdge(m))
	top, height = clampAnchored(top, height, w.geom.MinHeight, movesTopEdge(m))

	w.geom.Top = length.Px(top)
	w.geom.Left = length.Px(left)
	w.geom.Width = length.Px(width)
	w.geom.Height = length.Px(height)
	w.sized = true
	w.applyPolicy()
	return true
}

// rebase moves the drag anchors after a mid-drag restore so the pointer
// keeps its horizontal fraction of the window and stays over the title bar
func (w *Window) rebase(d *DragSession) {
	b := w.surface.Bounds()

	relX := d.PointerX - d.Left
	if d.Width > 0 {
		d.Left += relX - relX/d.Width*b.Width
	}
	if relY := d.PointerY - d.Top; relY > b.Height {
		d.Top += relY - b.Height
	}
	d.Width = b.Width
	d.Height = b.Height

	logging.Debug().
		Str("window", w.id).
		Float64("left", d.Left).
		Float64("width", d.Width).
		Msg("drag rebased after restore")
}

// Release ends the drag and enforces the minimum size
func (w *Window) Release() bool {
	d := w.drag
	if d == nil {
		return false
	}
	w.drag = nil
	w.allowRestore = false
	w.enforceMinimum(d.Mods)

	logging.Debug().Str("window", w.id).Msg("release")
	return true
}

// HandleAt hit-tests the rendered chrome. Corners win over edges,
// edges over the title bar.
func (w *Window) HandleAt(p types.Point) types.Handle {
	b := w.surface.Bounds()
	if w.closed || !b.Contains(p) {
		return types.HandleNone
	}

	s := w.chrome.Sizer
	top := p.Y < b.Y+s
	bottom := p.Y > b.Bottom()-s
	left := p.X < b.X+s
	right := p.X > b.Right()-s

	switch {
	case top && left:
		return types.HandleTopLeft
	case top && right:
		return types.HandleTopRight
	case bottom && left:
		return types.HandleBottomLeft
	case bottom && right:
		return types.HandleBottomRight
	case top:
		return types.HandleTop
	case bottom:
		return types.HandleBottom
	case left:
		return types.HandleLeft
	case right:
		return types.HandleRight
	case p.Y < b.Y+s+w.chrome.NavBar:
		return types.HandleTitle
	}
	return types.HandleNone
}

// TitleBarDoubleClick restores the snapshot when there is one,
// otherwise maximizes
func (w *Window) TitleBarDoubleClick() error {
	if w.closed {
		return ErrClosed
	}
	if w.snapshot != nil {
		w.allowRestore = true
		w.restore(true, true, true)
		return nil
	}
	return w.Maximize()
}
