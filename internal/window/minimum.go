package window

import (
	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/types"
)

// enforceMinimum clamps width and height to the minimum size.
// When mods drag the start edge of an axis, the opposite edge is kept
// in place by moving the position along with the clamp. A plain move
// never shifts the position.
func (w *Window) enforceMinimum(mods types.Modifiers) {
	w.applyPolicy()

	ctx := w.surface.Viewport()
	g := &w.geom

	if !exceeds(g.Width, g.MinWidth, length.AxisWidth, ctx) {
		if movesLeftEdge(mods) {
			shift := g.Width.Pixels(length.AxisWidth, ctx) - g.MinWidth
			g.Left = length.Px(g.Left.Pixels(length.AxisWidth, ctx) + shift)
		}
		g.Width = length.Px(g.MinWidth)
	}

	if !exceeds(g.Height, g.MinHeight, length.AxisHeight, ctx) {
		if movesTopEdge(mods) {
			shift := g.Height.Pixels(length.AxisHeight, ctx) - g.MinHeight
			g.Top = length.Px(g.Top.Pixels(length.AxisHeight, ctx) + shift)
		}
		g.Height = length.Px(g.MinHeight)
	}

	w.applyPolicy()
}

// movesLeftEdge reports whether mods drag the left edge rather than the
// whole window
func movesLeftEdge(mods types.Modifiers) bool {
	return mods.Left != 0 && mods.Width != 0
}

func movesTopEdge(mods types.Modifiers) bool {
	return mods.Top != 0 && mods.Height != 0
}

// exceeds reports whether value is strictly larger than min pixels
func exceeds(value length.Expr, min float64, axis length.Axis, ctx length.Context) bool {
	over, _ := length.Compare(length.Max, value, length.Px(min), axis, ctx)
	return over
}

// clampAnchored applies the minimum to a live size, moving the start edge
// when it is the one being dragged
func clampAnchored(pos, size, min float64, movesStart bool) (float64, float64) {
	if size >= min {
		return pos, size
	}
	if movesStart {
		pos += size - min
	}
	return pos, min
}
