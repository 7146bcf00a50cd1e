package eventloop

import (
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

// Event is an input applied to the window on the loop goroutine
type Event interface {
	Apply(w *window.Window, s window.Surface) error
}

// PointerDown presses the primary button. With HandleNone the handle
// is hit-tested at P; a press outside any handle is ignored.
type PointerDown struct {
	P      types.Point
	Handle types.Handle
}

func (e PointerDown) Apply(w *window.Window, _ window.Surface) error {
	h := e.Handle
	if h == types.HandleNone {
		h = w.HandleAt(e.P)
	}
	w.GrabHandle(e.P, h)
	return nil
}

// PointerMove moves the pointer; ignored when no drag is active
type PointerMove struct {
	P types.Point
}

func (e PointerMove) Apply(w *window.Window, _ window.Surface) error {
	w.Move(e.P)
	return nil
}

// PointerUp releases the primary button
type PointerUp struct{}

func (PointerUp) Apply(w *window.Window, _ window.Surface) error {
	w.Release()
	return nil
}

// DoubleClick toggles maximize when P is on the title bar
type DoubleClick struct {
	P types.Point
}

func (e DoubleClick) Apply(w *window.Window, _ window.Surface) error {
	if w.HandleAt(e.P) != types.HandleTitle {
		return nil
	}
	return w.TitleBarDoubleClick()
}

// ViewportResize reports a new viewport size. Surfaces that implement
// Resizer are updated first; others are expected to know already.
type ViewportResize struct {
	Width  float64
	Height float64
}

func (e ViewportResize) Apply(w *window.Window, s window.Surface) error {
	if r, ok := s.(Resizer); ok {
		r.SetViewport(e.Width, e.Height)
	}
	return w.ViewportResized()
}

// ContentResize reports a new natural content size
type ContentResize struct {
	Width  float64
	Height float64
}

func (e ContentResize) Apply(w *window.Window, s window.Surface) error {
	if r, ok := s.(Resizer); ok {
		r.SetNaturalSize(e.Width, e.Height)
	}
	return w.ContentResized()
}
