package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/mousebind"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the X11 server
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	// Required before any mouse binding or drag
	mousebind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// RootSize returns the root window size, the viewport of a floating window
func (c *Connection) RootSize() (int, int, error) {
	geom, err := xwindow.New(c.XUtil, c.Root).Geometry()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get root geometry: %w", err)
	}
	return geom.Width(), geom.Height(), nil
}

// WorkArea returns the EWMH work area of the current desktop when the
// window manager publishes one, otherwise the root size
func (c *Connection) WorkArea() (int, int, error) {
	areas, err := ewmh.WorkareaGet(c.XUtil)
	if err == nil && len(areas) > 0 {
		desktop, derr := ewmh.CurrentDesktopGet(c.XUtil)
		if derr != nil || int(desktop) >= len(areas) {
			desktop = 0
		}
		a := areas[desktop]
		return int(a.Width), int(a.Height), nil
	}
	return c.RootSize()
}

// EventLoop starts the main X11 event loop (blocking)
func (c *Connection) EventLoop() {
	xevent.Main(c.XUtil)
}

// Quit stops EventLoop
func (c *Connection) Quit() {
	xevent.Quit(c.XUtil)
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
