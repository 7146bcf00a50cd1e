package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/yourusername/floatwin/internal/eventloop"
	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/surface"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

const (
	// Two presses within this many ticks at the same spot are a double click
	doubleClickTicks = 24
	doubleClickSlop  = 4
)

// dockKeys map 1-9 onto the dock grid, row by row
var dockKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3,
	ebiten.Key4, ebiten.Key5, ebiten.Key6,
	ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

var (
	backgroundColor = color.RGBA{0x20, 0x22, 0x28, 0xff}
	bodyColor       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	titleColor      = color.RGBA{0x3a, 0x6e, 0xa5, 0xff}
	borderColor     = color.RGBA{0x10, 0x10, 0x10, 0xff}
	ghostColor      = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

// game hosts one window. ebiten calls Update and Draw on the same
// goroutine, so the window is used directly.
type game struct {
	win  *window.Window
	surf *surface.Memory

	width, height int
	tick          int
	lastPress     int
	lastPressPos  types.Point
	status        string
}

func newGame(w *window.Window, s *surface.Memory) *game {
	return &game{win: w, surf: s, lastPress: -doubleClickTicks - 1}
}

func (g *game) apply(ev eventloop.Event) {
	if err := ev.Apply(g.win, g.surf); err != nil {
		g.status = err.Error()
	}
}

func (g *game) command(fn func() error) {
	if err := fn(); err != nil {
		g.status = err.Error()
		return
	}
	g.status = ""
}

// Update implements ebiten.Game
func (g *game) Update() error {
	g.tick++

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	p := types.Point{X: float64(mx), Y: float64(my)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if g.tick-g.lastPress <= doubleClickTicks && near(p, g.lastPressPos) {
			g.lastPress = -doubleClickTicks - 1
			g.apply(eventloop.DoubleClick{P: p})
		} else {
			g.lastPress, g.lastPressPos = g.tick, p
			g.apply(eventloop.PointerDown{P: p})
		}
	}
	if g.win.Dragging() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.apply(eventloop.PointerMove{P: p})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.apply(eventloop.PointerUp{})
	}

	g.handleKeys()

	if !g.win.Dragging() {
		ebiten.SetCursorShape(cursorFor(g.win.HandleAt(p)))
	}
	return nil
}

func (g *game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.command(g.win.Maximize)
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.command(g.win.Minimize)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.command(g.win.ApplyBasicFloatingStyle)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.win.AllowRestoration()
		if !g.win.Restore(true, true, true) {
			g.status = "nothing to restore"
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.command(func() error { return g.win.SetPolicy(nextPolicy(g.win.Policy())) })
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.command(g.win.Close)
	}

	for i, key := range dockKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.command(func() error { return g.win.Dock(i/3, i%3, true) })
		}
	}
}

// Draw implements ebiten.Game
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if snap := g.win.Snapshot(); snap != nil && !g.win.Closed() {
		r := snapshotRect(g.win, snap)
		strokeRoundedRect(screen, r, 0, 1, ghostColor)
	}

	if !g.win.Closed() {
		b := g.win.Bounds()
		chrome := g.win.Chrome()
		radius := float32(chrome.BorderRadius)

		fillRoundedRect(screen, b, radius, bodyColor)
		title := types.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: math.Min(chrome.NavBar+chrome.Sizer, b.Height)}
		fillRoundedRect(screen, title, radius, titleColor)
		strokeRoundedRect(screen, b, radius, 1, borderColor)

		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %.0fx%.0f", g.win.Policy(), b.Width, b.Height),
			int(b.X+chrome.Sizer+4), int(b.Y+chrome.Sizer))
	}

	status := "m max  n min  f float  r restore  p policy  1-9 dock  c close  q quit"
	if g.win.Closed() {
		status = "window closed  q quit"
	}
	if g.status != "" {
		status = g.status
	}
	ebitenutil.DebugPrintAt(screen, status, 4, g.height-16)
}

// Layout implements ebiten.Game. The outside size is the viewport.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		logging.Debug().Int("width", outsideWidth).Int("height", outsideHeight).Msg("gui viewport resized")
		g.apply(eventloop.ViewportResize{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

func near(a, b types.Point) bool {
	return math.Abs(a.X-b.X) <= doubleClickSlop && math.Abs(a.Y-b.Y) <= doubleClickSlop
}

func nextPolicy(p window.Policy) window.Policy {
	for i, q := range window.Policies {
		if q == p {
			return window.Policies[(i+1)%len(window.Policies)]
		}
	}
	return window.Fixed
}

func cursorFor(h types.Handle) ebiten.CursorShapeType {
	switch h {
	case types.HandleTitle:
		return ebiten.CursorShapeMove
	case types.HandleLeft, types.HandleRight:
		return ebiten.CursorShapeEWResize
	case types.HandleTop, types.HandleBottom:
		return ebiten.CursorShapeNSResize
	case types.HandleTopLeft, types.HandleBottomRight:
		return ebiten.CursorShapeNWSEResize
	case types.HandleTopRight, types.HandleBottomLeft:
		return ebiten.CursorShapeNESWResize
	}
	return ebiten.CursorShapeDefault
}

// snapshotRect resolves a saved geometry against the current viewport
func snapshotRect(w *window.Window, s *window.Snapshot) types.Rect {
	ctx := w.Viewport()
	return types.Rect{
		X:      s.Left.Pixels(length.AxisWidth, ctx),
		Y:      s.Top.Pixels(length.AxisHeight, ctx),
		Width:  s.Width.Pixels(length.AxisWidth, ctx),
		Height: s.Height.Pixels(length.AxisHeight, ctx),
	}
}

func roundedRectPath(r types.Rect, radius float32) *vector.Path {
	x, y := float32(math.Round(r.X)), float32(math.Round(r.Y))
	w, h := float32(math.Round(r.Width)), float32(math.Round(r.Height))
	radius = min(radius, w/2, h/2)

	var path vector.Path
	path.MoveTo(x+radius, y)
	path.LineTo(x+w-radius, y)
	path.QuadTo(x+w, y, x+w, y+radius)
	path.LineTo(x+w, y+h-radius)
	path.QuadTo(x+w, y+h, x+w-radius, y+h)
	path.LineTo(x+radius, y+h)
	path.QuadTo(x, y+h, x, y+h-radius)
	path.LineTo(x, y+radius)
	path.QuadTo(x, y, x+radius, y)
	path.Close()
	return &path
}

func fillRoundedRect(dst *ebiten.Image, r types.Rect, radius float32, col color.RGBA) {
	drawOp := &vector.DrawPathOptions{AntiAlias: radius > 0}
	drawOp.ColorScale.ScaleWithColor(col)
	vector.FillPath(dst, roundedRectPath(r, radius), nil, drawOp)
}

func strokeRoundedRect(dst *ebiten.Image, r types.Rect, radius, width float32, col color.RGBA) {
	strokeOp := &vector.StrokeOptions{Width: width}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(col)
	vector.StrokePath(dst, roundedRectPath(r, radius), strokeOp, drawOp)
}
