package window

import (
	"fmt"
	"strings"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/logging"
)

// Policy is the unit regime of the window geometry
type Policy string

const (
	Auto     Policy = "Auto"     // size follows content, position in px
	Fixed    Policy = "Fixed"    // everything in px
	Relative Policy = "Relative" // everything in % of the container
)

// Policies lists every valid policy
var Policies = []Policy{Auto, Fixed, Relative}

// Valid reports whether p is a known policy
func (p Policy) Valid() bool {
	switch p {
	case Auto, Fixed, Relative:
		return true
	}
	return false
}

// ParsePolicy converts a case-insensitive name to a Policy
func ParsePolicy(s string) (Policy, error) {
	for _, p := range Policies {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// SetPolicy is the explicit user policy change.
// It discards any restorable snapshot before converting the geometry.
func (w *Window) SetPolicy(p Policy) error {
	if w.closed {
		return ErrClosed
	}
	if !p.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPolicy, string(p))
	}

	w.snapshot = nil
	w.allowRestore = false
	w.setPolicy(p)
	return nil
}

func (w *Window) setPolicy(p Policy) {
	prev := w.policy
	w.policy = p
	w.applyPolicy()

	logging.Debug().
		Str("window", w.id).
		Str("from", string(prev)).
		Str("to", string(p)).
		Msg("policy applied")
}

// applyPolicy rewrites the geometry in the active policy's units and commits it
func (w *Window) applyPolicy() {
	if w.policy != Auto && !w.sized {
		w.fixateSize()
	}

	ctx := w.surface.Viewport()
	g := &w.geom

	switch w.policy {
	case Fixed:
		g.Top = length.Px(g.Top.Pixels(length.AxisHeight, ctx))
		g.Left = length.Px(g.Left.Pixels(length.AxisWidth, ctx))
		g.Width = length.Px(g.Width.Pixels(length.AxisWidth, ctx))
		g.Height = length.Px(g.Height.Pixels(length.AxisHeight, ctx))
	case Relative:
		g.Top = length.Percent(g.Top.Percent(length.AxisHeight, ctx))
		g.Left = length.Percent(g.Left.Percent(length.AxisWidth, ctx))
		g.Width = length.Percent(g.Width.Percent(length.AxisWidth, ctx))
		g.Height = length.Percent(g.Height.Percent(length.AxisHeight, ctx))
	case Auto:
		g.Top = length.Px(g.Top.Pixels(length.AxisHeight, ctx))
		g.Left = length.Px(g.Left.Pixels(length.AxisWidth, ctx))
		w.fitContent()
	}

	w.commit()
}

// fitContent sizes the window to its content, never below the minimum
func (w *Window) fitContent() {
	nw, nh := w.surface.NaturalSize()
	w.geom.Width = length.Px(max(nw, w.geom.MinWidth))
	w.geom.Height = length.Px(max(nh, w.geom.MinHeight))
	w.sized = true
}
