package eventloop_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/yourusername/floatwin/internal/eventloop"
	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/surface"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func startLoop(t *testing.T) (*eventloop.Loop, *surface.Memory, context.CancelFunc) {
	t.Helper()
	s := surface.NewMemory(1280, 800, 300, 200)
	w, err := window.New(s, window.Options{
		Policy:   window.Fixed,
		Position: &window.Position{Top: length.Px(100), Left: length.Px(100)},
		Size:     &window.Size{Width: length.Px(400), Height: length.Px(300)},
	})
	if err != nil {
		t.Fatalf("window.New: %v", err)
	}

	l := eventloop.New(w, s)
	ctx, cancel := context.WithCancel(context.Background())
	go l.Run(ctx)
	t.Cleanup(func() {
		cancel()
		<-l.Done()
	})
	return l, s, cancel
}

func bounds(t *testing.T, l *eventloop.Loop) types.Rect {
	t.Helper()
	var b types.Rect
	err := l.Do(context.Background(), func(w *window.Window) error {
		b = w.Bounds()
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	return b
}

func TestSubmitDragSequence(t *testing.T) {
	l, _, _ := startLoop(t)
	ctx := context.Background()

	events := []eventloop.Event{
		eventloop.PointerDown{P: types.Point{X: 300, Y: 110}},
		eventloop.PointerMove{P: types.Point{X: 250, Y: 160}},
		eventloop.PointerUp{},
	}
	for _, ev := range events {
		if err := l.Submit(ctx, ev); err != nil {
			t.Fatalf("Submit(%T): %v", ev, err)
		}
	}

	b := bounds(t, l)
	if !floatEquals(b.X, 50) || !floatEquals(b.Y, 150) {
		t.Errorf("bounds = %+v, want moved to 50,150", b)
	}
}

func TestPostPreservesOrder(t *testing.T) {
	l, _, _ := startLoop(t)

	if !l.Post(eventloop.PointerDown{P: types.Point{X: 499, Y: 399}}) {
		t.Fatal("Post rejected")
	}
	for i := 1; i <= 50; i++ {
		if !l.Post(eventloop.PointerMove{P: types.Point{X: 499 + float64(i), Y: 399}}) {
			t.Fatalf("Post %d rejected", i)
		}
	}
	l.Post(eventloop.PointerUp{})

	// Do is queued behind every posted event
	b := bounds(t, l)
	if !floatEquals(b.Width, 450) || !floatEquals(b.Height, 300) {
		t.Errorf("bounds = %+v, want 450x300", b)
	}
}

func TestPointerDownOutsideHandles(t *testing.T) {
	l, _, _ := startLoop(t)
	ctx := context.Background()

	l.Submit(ctx, eventloop.PointerDown{P: types.Point{X: 10, Y: 10}})

	var dragging bool
	l.Do(ctx, func(w *window.Window) error {
		dragging = w.Dragging()
		return nil
	})
	if dragging {
		t.Error("press outside the window started a drag")
	}
}

func TestDoubleClickEvent(t *testing.T) {
	l, _, _ := startLoop(t)
	ctx := context.Background()

	l.Submit(ctx, eventloop.DoubleClick{P: types.Point{X: 300, Y: 200}})
	if b := bounds(t, l); !floatEquals(b.Width, 400) {
		t.Errorf("double-click on content changed the window: %+v", b)
	}

	l.Submit(ctx, eventloop.DoubleClick{P: types.Point{X: 300, Y: 110}})
	if b := bounds(t, l); !floatEquals(b.Width, 1280) || !floatEquals(b.Height, 800) {
		t.Errorf("bounds = %+v, want maximized", b)
	}
}

func TestResizeEvents(t *testing.T) {
	l, s, _ := startLoop(t)
	ctx := context.Background()

	if err := l.Submit(ctx, eventloop.ViewportResize{Width: 1280, Height: 1600}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if vp := s.Viewport(); vp.ViewportHeight != 1600 {
		t.Errorf("viewport height = %v, want 1600", vp.ViewportHeight)
	}

	var min float64
	l.Do(ctx, func(w *window.Window) error {
		min = w.Geometry().MinWidth
		return w.SetPolicy(window.Auto)
	})
	if !floatEquals(min, 316) {
		t.Errorf("minWidth = %v, want 316", min)
	}

	l.Submit(ctx, eventloop.ContentResize{Width: 500, Height: 450})
	if b := bounds(t, l); !floatEquals(b.Width, 500) || !floatEquals(b.Height, 450) {
		t.Errorf("bounds = %+v, want 500x450", b)
	}
}

func TestDoReturnsError(t *testing.T) {
	l, _, _ := startLoop(t)

	err := l.Do(context.Background(), func(w *window.Window) error {
		return w.Dock(5, 5, false)
	})
	if !errors.Is(err, window.ErrDockOutOfRange) {
		t.Errorf("Do error = %v, want ErrDockOutOfRange", err)
	}
}

func TestConcurrentCallers(t *testing.T) {
	l, _, _ := startLoop(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := l.Do(context.Background(), func(w *window.Window) error {
				return w.Dock(i%3, (i/3)%3, i%2 == 0)
			})
			if err != nil {
				t.Errorf("Dock: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if b := bounds(t, l); b.Width < 208 || b.Height < 32 {
		t.Errorf("bounds = %+v below minimum", b)
	}
}

func TestStoppedLoop(t *testing.T) {
	l, _, cancel := startLoop(t)
	cancel()

	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}

	if err := l.Submit(context.Background(), eventloop.PointerUp{}); !errors.Is(err, eventloop.ErrStopped) {
		t.Errorf("Submit after stop error = %v, want ErrStopped", err)
	}
	if l.Post(eventloop.PointerUp{}) {
		t.Error("Post after stop = true")
	}
	if err := l.Run(context.Background()); err == nil {
		t.Error("second Run() error = nil")
	}
}

func TestOnEvent(t *testing.T) {
	s := surface.NewMemory(1280, 800, 300, 200)
	w, _ := window.New(s, window.Options{})
	l := eventloop.New(w, s)

	calls := make(chan string, 4)
	l.OnEvent = func(w *window.Window) { calls <- string(w.Policy()) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	l.Do(ctx, func(w *window.Window) error { return w.SetPolicy(window.Relative) })

	select {
	case got := <-calls:
		if got != string(window.Relative) {
			t.Errorf("OnEvent saw policy %q, want Relative", got)
		}
	case <-time.After(time.Second):
		t.Fatal("OnEvent not called")
	}
}
