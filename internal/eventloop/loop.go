// Package eventloop serialises access to a window from asynchronous sources.
package eventloop

import (
	"context"
	"errors"
	"sync"

	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/window"
)

// DefaultQueueSize is the capacity of the event queue
const DefaultQueueSize = 256

var ErrStopped = errors.New("event loop stopped")

// Resizer is implemented by surfaces whose reference sizes are driven
// from outside, like the in-memory surface
type Resizer interface {
	SetViewport(width, height float64)
	SetNaturalSize(width, height float64)
}

// Loop owns a window. Every event and command runs on the goroutine
// that called Run, one at a time, in submission order.
type Loop struct {
	win     *window.Window
	surface window.Surface

	queue   chan func()
	done    chan struct{}
	runOnce sync.Once

	// OnEvent, when set, is called on the loop goroutine after every job
	OnEvent func(w *window.Window)
}

// New creates a loop for a window drawn on surface
func New(w *window.Window, surface window.Surface) *Loop {
	return NewWithQueueSize(w, surface, DefaultQueueSize)
}

// NewWithQueueSize creates a loop with a custom queue capacity
func NewWithQueueSize(w *window.Window, surface window.Surface, size int) *Loop {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Loop{
		win:     w,
		surface: surface,
		queue:   make(chan func(), size),
		done:    make(chan struct{}),
	}
}

// Run processes jobs until ctx is cancelled. It may be called once.
func (l *Loop) Run(ctx context.Context) error {
	started := false
	l.runOnce.Do(func() { started = true })
	if !started {
		return errors.New("event loop already running")
	}
	defer close(l.done)

	logging.Debug().Str("window", l.win.ID()).Msg("event loop started")
	for {
		select {
		case <-ctx.Done():
			logging.Debug().Str("window", l.win.ID()).Msg("event loop stopped")
			return ctx.Err()
		case job := <-l.queue:
			job()
			if l.OnEvent != nil {
				l.OnEvent(l.win)
			}
		}
	}
}

// Surface returns the surface events are applied with.
// Only touch it from inside Do.
func (l *Loop) Surface() window.Surface {
	return l.surface
}

// Done is closed when Run returns
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Do runs fn on the loop goroutine and waits for its result
func (l *Loop) Do(ctx context.Context, fn func(w *window.Window) error) error {
	errc := make(chan error, 1)
	job := func() { errc <- fn(l.win) }

	select {
	case l.queue <- job:
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-errc:
		return err
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit applies ev on the loop goroutine and waits for it
func (l *Loop) Submit(ctx context.Context, ev Event) error {
	return l.Do(ctx, func(w *window.Window) error {
		return ev.Apply(w, l.surface)
	})
}

// Post queues ev without waiting. It reports false when the queue is
// full or the loop has stopped; the event is dropped then.
func (l *Loop) Post(ev Event) bool {
	job := func() {
		if err := ev.Apply(l.win, l.surface); err != nil {
			logging.Warn().Err(err).Str("window", l.win.ID()).Msg("posted event failed")
		}
	}

	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.queue <- job:
		return true
	default:
		logging.Warn().Str("window", l.win.ID()).Msg("event queue full, dropping event")
		return false
	}
}
