package window

import (
	"fmt"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/types"
)

// ApplyBasicFloatingStyle keeps position and size, puts the window on top
// and enforces the minimum size
func (w *Window) ApplyBasicFloatingStyle() error {
	if w.closed {
		return ErrClosed
	}
	w.topmost = true
	w.enforceMinimum(types.Modifiers{})
	return nil
}

// ApplyFixedStyle saves a snapshot and moves the window to pos, optionally
// resizing it. anchor is a percentage of the window's own size subtracted
// from the position.
func (w *Window) ApplyFixedStyle(pos *Position, size *Size, anchor Anchor) error {
	if w.closed {
		return ErrClosed
	}

	w.Save(false)
	if err := w.ApplyBasicFloatingStyle(); err != nil {
		return err
	}

	if size != nil {
		w.geom.Width = size.Width
		w.geom.Height = size.Height
		w.sized = true
		w.commit()
	}

	b := w.surface.Bounds()
	if pos != nil {
		w.geom.Left = pos.Left.Add(length.Px(-anchor.X * b.Width / 100))
		w.geom.Top = pos.Top.Add(length.Px(-anchor.Y * b.Height / 100))
	}

	// An explicit size would be thrown away by content fitting.
	if size != nil && w.policy == Auto {
		w.setPolicy(Relative)
	} else {
		w.applyPolicy()
	}

	w.enforceMinimum(types.Modifiers{})
	return nil
}

// Maximize fills the container and tracks it with the Relative policy
func (w *Window) Maximize() error {
	if err := w.ApplyBasicFloatingStyle(); err != nil {
		return err
	}
	err := w.ApplyFixedStyle(
		&Position{Top: length.Percent(0), Left: length.Percent(0)},
		&Size{Width: length.Percent(100), Height: length.Percent(100)},
		Anchor{},
	)
	if err != nil {
		return err
	}
	w.setPolicy(Relative)

	logging.Debug().Str("window", w.id).Msg("maximized")
	return nil
}

// Minimize collapses the window to its minimum size in the top-left corner
func (w *Window) Minimize() error {
	if err := w.ApplyBasicFloatingStyle(); err != nil {
		return err
	}
	err := w.ApplyFixedStyle(
		&Position{Top: length.Percent(0), Left: length.Percent(0)},
		&Size{Width: length.Percent(0), Height: length.Percent(0)},
		Anchor{},
	)
	if err != nil {
		return err
	}
	w.setPolicy(Fixed)

	logging.Debug().Str("window", w.id).Msg("minimized")
	return nil
}

// Dock places the window on a 3x3 grid of anchor points.
// With autosize, edge cells take half the container and the middle
// row or column takes all of it.
func (w *Window) Dock(row, col int, autosize bool) error {
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return fmt.Errorf("%w: row %d, col %d", ErrDockOutOfRange, row, col)
	}

	pos := &Position{
		Top:  length.Percent(float64(row * 50)),
		Left: length.Percent(float64(col * 50)),
	}

	var size *Size
	if autosize {
		size = &Size{
			Width:  length.Percent(dockSpan(col)),
			Height: length.Percent(dockSpan(row)),
		}
	}

	if err := w.ApplyFixedStyle(pos, size, Anchor{X: float64(col * 50), Y: float64(row * 50)}); err != nil {
		return err
	}

	logging.Debug().
		Str("window", w.id).
		Int("row", row).
		Int("col", col).
		Bool("autosize", autosize).
		Msg("docked")
	return nil
}

func dockSpan(i int) float64 {
	if i%2 == 0 {
		return 50
	}
	return 100
}

// Close detaches the window from its host. Further commands fail with ErrClosed.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.drag = nil
	w.surface.Detach()

	logging.Debug().Str("window", w.id).Msg("closed")
	return nil
}

// ViewportResized re-derives the layout constants, then enforces the minimum
func (w *Window) ViewportResized() error {
	if w.closed {
		return ErrClosed
	}
	w.deriveLayout()
	w.enforceMinimum(types.Modifiers{})
	return nil
}

// ContentResized refits an Auto window and enforces the minimum
func (w *Window) ContentResized() error {
	if w.closed {
		return ErrClosed
	}
	w.enforceMinimum(types.Modifiers{})
	return nil
}
