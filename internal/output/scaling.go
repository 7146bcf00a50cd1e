package output

import "github.com/yourusername/floatwin/internal/types"

// ScalingContext maps viewport pixels onto terminal cells.
// Cell (0, 0) and the last row and column hold the viewport border.
type ScalingContext struct {
	// Viewport dimensions in pixels
	PixelWidth  float64
	PixelHeight float64

	// Canvas dimensions in characters
	TermWidth  int
	TermHeight int

	ScaleX float64
	ScaleY float64
}

// NewScalingContext fits a viewport into a terminal area. Characters are
// roughly twice as tall as wide, so the vertical scale is halved unless
// the canvas is too short for it.
func NewScalingContext(viewportW, viewportH float64, termWidth, termHeight int) *ScalingContext {
	if viewportW <= 0 {
		viewportW = 1
	}
	if viewportH <= 0 {
		viewportH = 1
	}
	termWidth = max(termWidth, 12)
	termHeight = max(termHeight, 6)

	// Interior excludes the border on each side
	availW := float64(termWidth - 2)
	availH := float64(termHeight - 2)

	scaleX := availW / viewportW
	scaleY := scaleX / 2
	if viewportH*scaleY > availH {
		scaleY = availH / viewportH
		scaleX = min(scaleX, scaleY*2)
	}

	return &ScalingContext{
		PixelWidth:  viewportW,
		PixelHeight: viewportH,
		TermWidth:   int(viewportW*scaleX) + 2,
		TermHeight:  int(viewportH*scaleY) + 2,
		ScaleX:      scaleX,
		ScaleY:      scaleY,
	}
}

// PixelToTerminal converts viewport coordinates to canvas coordinates
func (sc *ScalingContext) PixelToTerminal(x, y float64) (int, int) {
	return int(x*sc.ScaleX) + 1, int(y*sc.ScaleY) + 1
}

// ScaleRect converts a pixel box to a canvas box of at least 3x2 cells
func (sc *ScalingContext) ScaleRect(r types.Rect) (x, y, w, h int) {
	x, y = sc.PixelToTerminal(r.X, r.Y)
	right, bottom := sc.PixelToTerminal(r.Right(), r.Bottom())
	return x, y, max(right-x, 3), max(bottom-y, 2)
}

// ClampToCanvas ensures a box stays within the canvas
func (sc *ScalingContext) ClampToCanvas(x, y, w, h int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}

	if x+w > sc.TermWidth {
		w = sc.TermWidth - x
	}
	if y+h > sc.TermHeight {
		h = sc.TermHeight - y
	}

	return x, y, w, h
}
