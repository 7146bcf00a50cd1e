package x11

import (
	"context"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/mousebind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/yourusername/floatwin/internal/eventloop"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

const (
	dragButton = "1"

	// Double clicks are two presses this close together, in ms
	doubleClickTime = 400
	// and this close on screen, in px
	doubleClickSlop = 4
)

// Host feeds X input for one surface into the event loop
type Host struct {
	conn    *Connection
	surface *Surface
	loop    *eventloop.Loop
	clicks  clickTracker
}

// NewHost creates a host; call Bind before running the X event loop
func NewHost(conn *Connection, s *Surface, loop *eventloop.Loop) *Host {
	return &Host{conn: conn, surface: s, loop: loop}
}

// Bind connects the pointer and root resize handlers
func (h *Host) Bind() error {
	xu := h.conn.XUtil

	mousebind.Drag(xu, h.surface.ID(), h.surface.ID(), dragButton, true,
		h.dragBegin, h.dragStep, h.dragEnd)

	// Drag already grabs the button; this only observes presses
	err := mousebind.ButtonPressFun(func(_ *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		p := types.Point{X: float64(ev.RootX), Y: float64(ev.RootY)}
		if h.clicks.press(uint32(ev.Time), p) {
			h.loop.Post(eventloop.DoubleClick{P: p})
		}
	}).Connect(xu, h.surface.ID(), dragButton, false, false)
	if err != nil {
		return err
	}

	root := xwindow.New(xu, h.conn.Root)
	if err := root.Listen(xproto.EventMaskStructureNotify); err != nil {
		return err
	}
	xevent.ConfigureNotifyFun(func(_ *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		w, hgt, err := h.conn.WorkArea()
		if err != nil {
			w, hgt = int(ev.Width), int(ev.Height)
		}
		h.loop.Post(eventloop.ViewportResize{Width: float64(w), Height: float64(hgt)})
	}).Connect(xu, h.conn.Root)

	return nil
}

// dragBegin hit-tests synchronously: the drag only starts on a handle
func (h *Host) dragBegin(_ *xgbutil.XUtil, rx, ry, _, _ int) (bool, xproto.Cursor) {
	p := types.Point{X: float64(rx), Y: float64(ry)}

	var accepted bool
	err := h.loop.Do(context.Background(), func(w *window.Window) error {
		accepted = w.GrabHandle(p, w.HandleAt(p))
		return nil
	})
	if err != nil {
		logging.Warn().Err(err).Msg("x11 drag begin failed")
		return false, 0
	}
	return accepted, 0
}

func (h *Host) dragStep(_ *xgbutil.XUtil, rx, ry, _, _ int) {
	h.loop.Post(eventloop.PointerMove{P: types.Point{X: float64(rx), Y: float64(ry)}})
}

func (h *Host) dragEnd(_ *xgbutil.XUtil, _, _, _, _ int) {
	h.loop.Post(eventloop.PointerUp{})
}

// clickTracker detects double clicks from press timestamps
type clickTracker struct {
	last  uint32
	pos   types.Point
	armed bool
}

// press records a press and reports whether it completes a double click.
// A completed double click disarms the tracker so a third press starts over.
func (c *clickTracker) press(ms uint32, p types.Point) bool {
	double := c.armed &&
		ms-c.last <= doubleClickTime &&
		abs(p.X-c.pos.X) <= doubleClickSlop &&
		abs(p.Y-c.pos.Y) <= doubleClickSlop

	c.last, c.pos = ms, p
	c.armed = !double
	return double
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
