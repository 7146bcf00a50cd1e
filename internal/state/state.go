// Package state remembers the geometry each host left its window in, so
// the next run opens where the last one ended.
package state

import (
	"sync"
	"time"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/window"
)

const (
	// StateVersion is the current state file format version
	StateVersion = 1
)

// RuntimeState is the root state structure persisted to disk
type RuntimeState struct {
	Version     int                     `json:"version"`
	Windows     map[string]*WindowState `json:"windows"` // host -> state
	LastUpdated time.Time               `json:"lastUpdated"`

	mu sync.RWMutex `json:"-"` // For thread-safe access (not serialized)
}

// WindowState is one host's window as it was last seen
type WindowState struct {
	Host     string           `json:"host"`
	Policy   window.Policy    `json:"policy"`
	Top      length.Expr      `json:"top"`
	Left     length.Expr      `json:"left"`
	Width    length.Expr      `json:"width"`
	Height   length.Expr      `json:"height"`
	Snapshot *window.Snapshot `json:"snapshot,omitempty"`
	Viewport Viewport         `json:"viewport"`
	SavedAt  time.Time        `json:"savedAt"`
}

// Viewport is the viewport size at the time the state was recorded
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRuntimeState creates a new empty runtime state
func NewRuntimeState() *RuntimeState {
	return &RuntimeState{
		Version:     StateVersion,
		Windows:     make(map[string]*WindowState),
		LastUpdated: time.Now(),
	}
}

// Capture reads the state of a live window. Call it from the goroutine
// that owns w.
func Capture(host string, w *window.Window) *WindowState {
	g := w.Geometry()
	ctx := w.Viewport()
	ws := &WindowState{
		Host:     host,
		Policy:   w.Policy(),
		Top:      g.Top,
		Left:     g.Left,
		Width:    g.Width,
		Height:   g.Height,
		Viewport: Viewport{Width: ctx.ViewportWidth, Height: ctx.ViewportHeight},
		SavedAt:  time.Now(),
	}
	if snap := w.Snapshot(); snap != nil {
		s := *snap
		ws.Snapshot = &s
	}
	return ws
}

// Record stores the state of a live window under host. A closed window
// is forgotten instead, so the next run starts from the configuration.
func (rs *RuntimeState) Record(host string, w *window.Window) {
	if w.Closed() {
		rs.Forget(host)
		return
	}
	ws := Capture(host, w)

	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.Windows[host] = ws
}

// Lookup returns a copy of the state recorded for host, or nil
func (rs *RuntimeState) Lookup(host string) *WindowState {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	ws, ok := rs.Windows[host]
	if !ok {
		return nil
	}
	cp := *ws
	return &cp
}

// Forget removes the state recorded for host
func (rs *RuntimeState) Forget(host string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	delete(rs.Windows, host)
}

// ApplyTo overrides the policy, position and size of opts with the
// recorded geometry. Auto windows keep their content-derived size.
func (ws *WindowState) ApplyTo(opts *window.Options) {
	if ws.Policy.Valid() {
		opts.Policy = ws.Policy
	}
	opts.Position = &window.Position{Top: ws.Top, Left: ws.Left}
	if ws.Policy != window.Auto && !ws.Width.IsZero() && !ws.Height.IsZero() {
		opts.Size = &window.Size{Width: ws.Width, Height: ws.Height}
	}
}
