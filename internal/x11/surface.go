package x11

import (
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/surface"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

const stateAbove = "_NET_WM_STATE_ABOVE"

// Surface renders a window as a top-level X client window. Layout is
// resolved by the embedded memory surface; every frame is then pushed
// to the window manager.
type Surface struct {
	*surface.Memory

	conn  *Connection
	win   *xwindow.Window
	above bool
}

// NewSurface creates and maps a client window. The viewport is the
// work area; content is the natural size of the window's content.
func NewSurface(conn *Connection, title string, contentW, contentH float64) (*Surface, error) {
	vw, vh, err := conn.WorkArea()
	if err != nil {
		return nil, err
	}

	win, err := xwindow.Generate(conn.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate window id: %w", err)
	}
	w, h := pixelSize(contentW), pixelSize(contentH)
	if err := win.CreateChecked(conn.Root, 0, 0, w, h, xproto.CwBackPixel, 0xf0f0f0); err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	if err := ewmh.WmNameSet(conn.XUtil, win.Id, title); err != nil {
		logging.Warn().Err(err).Msg("failed to set window name")
	}
	win.Map()

	return &Surface{
		Memory: surface.NewMemory(float64(vw), float64(vh), contentW, contentH),
		conn:   conn,
		win:    win,
	}, nil
}

// ID returns the X window id
func (s *Surface) ID() xproto.Window {
	return s.win.Id
}

// Apply implements window.Surface
func (s *Surface) Apply(frame window.Frame) {
	s.Memory.Apply(frame)

	x, y, w, h := pixelBox(s.Memory.Bounds())
	if err := ewmh.MoveresizeWindow(s.conn.XUtil, s.win.Id, x, y, w, h); err != nil {
		// Fallback to direct window manipulation
		s.win.MoveResize(x, y, w, h)
	}

	if frame.Topmost && !s.above {
		if err := ewmh.WmStateReq(s.conn.XUtil, s.win.Id, ewmh.StateAdd, stateAbove); err != nil {
			logging.Warn().Err(err).Msg("failed to raise window above")
		} else {
			s.above = true
		}
	}

	logging.Debug().
		Uint32("xid", uint32(s.win.Id)).
		Int("x", x).Int("y", y).Int("width", w).Int("height", h).
		Msg("x11 frame")
}

// Detach implements window.Surface
func (s *Surface) Detach() {
	s.Memory.Detach()
	s.win.Unmap()
}

// pixelBox rounds a layout box to X geometry. X windows are at least 1x1.
func pixelBox(r types.Rect) (x, y, w, h int) {
	return int(math.Round(r.X)), int(math.Round(r.Y)), pixelSize(r.Width), pixelSize(r.Height)
}

func pixelSize(v float64) int {
	return max(int(math.Round(v)), 1)
}
