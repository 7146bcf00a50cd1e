package window

import (
	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/logging"
)

// Snapshot is the geometry saved before entering a special layout
type Snapshot struct {
	Policy Policy      `json:"policy"`
	Top    length.Expr `json:"top"`
	Left   length.Expr `json:"left"`
	Width  length.Expr `json:"width"`
	Height length.Expr `json:"height"`
}

// Save captures the current geometry unless a snapshot already exists.
// overwrite replaces an existing snapshot. Reports whether one was written.
func (w *Window) Save(overwrite bool) bool {
	if w.snapshot != nil && !overwrite {
		return false
	}

	w.snapshot = &Snapshot{
		Policy: w.policy,
		Top:    w.geom.Top,
		Left:   w.geom.Left,
		Width:  w.geom.Width,
		Height: w.geom.Height,
	}

	logging.Debug().
		Str("window", w.id).
		Str("policy", string(w.policy)).
		Str("width", w.geom.Width.String()).
		Str("height", w.geom.Height.String()).
		Msg("snapshot saved")
	return true
}

// Snapshot returns a copy of the saved snapshot, or nil
func (w *Window) Snapshot() *Snapshot {
	if w.snapshot == nil {
		return nil
	}
	s := *w.snapshot
	return &s
}

// AllowRestoration opens the gate for the next restore attempt
func (w *Window) AllowRestoration() {
	w.allowRestore = true
}

// RestoreAllowed reports whether the restore gate is open
func (w *Window) RestoreAllowed() bool {
	return w.allowRestore
}

// Restore writes the snapshot back. The snapshot and the gate are consumed
// by every attempt; it reports false when either was missing.
func (w *Window) Restore(restorePolicy, restorePosition, restoreSize bool) bool {
	if w.closed {
		return false
	}
	return w.restore(restorePolicy, restorePosition, restoreSize)
}

func (w *Window) restore(restorePolicy, restorePosition, restoreSize bool) bool {
	snap, allowed := w.snapshot, w.allowRestore
	w.snapshot = nil
	w.allowRestore = false

	if snap == nil || !allowed {
		return false
	}

	if restorePosition {
		w.geom.Top = snap.Top
		w.geom.Left = snap.Left
	}
	if restoreSize {
		w.geom.Width = snap.Width
		w.geom.Height = snap.Height
		w.sized = true
	}

	// Policy goes last: applying it converts the values written above.
	if restorePolicy {
		w.setPolicy(snap.Policy)
	} else {
		w.applyPolicy()
	}

	logging.Debug().
		Str("window", w.id).
		Bool("policy", restorePolicy).
		Bool("position", restorePosition).
		Bool("size", restoreSize).
		Msg("snapshot restored")
	return true
}
