package window_test

import (
	"testing"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

func TestAnchoredResize(t *testing.T) {
	tests := []struct {
		name   string
		handle types.Handle
		from   types.Point
		to     types.Point
		want   types.Rect
	}{
		{
			name:   "bottom-right outward",
			handle: types.HandleBottomRight,
			from:   types.Point{X: 499, Y: 399},
			to:     types.Point{X: 529, Y: 419},
			want:   types.Rect{X: 100, Y: 100, Width: 430, Height: 320},
		},
		{
			name:   "bottom-right inward",
			handle: types.HandleBottomRight,
			from:   types.Point{X: 499, Y: 399},
			to:     types.Point{X: 449, Y: 349},
			want:   types.Rect{X: 100, Y: 100, Width: 350, Height: 250},
		},
		{
			name:   "top-left outward",
			handle: types.HandleTopLeft,
			from:   types.Point{X: 101, Y: 101},
			to:     types.Point{X: 81, Y: 91},
			want:   types.Rect{X: 80, Y: 90, Width: 420, Height: 310},
		},
		{
			name:   "top-left inward",
			handle: types.HandleTopLeft,
			from:   types.Point{X: 101, Y: 101},
			to:     types.Point{X: 131, Y: 121},
			want:   types.Rect{X: 130, Y: 120, Width: 370, Height: 280},
		},
		{
			name:   "right edge",
			handle: types.HandleRight,
			from:   types.Point{X: 499, Y: 250},
			to:     types.Point{X: 539, Y: 290},
			want:   types.Rect{X: 100, Y: 100, Width: 440, Height: 300},
		},
		{
			name:   "title bar moves only",
			handle: types.HandleTitle,
			from:   types.Point{X: 300, Y: 110},
			to:     types.Point{X: 250, Y: 160},
			want:   types.Rect{X: 50, Y: 150, Width: 400, Height: 300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWindow(t, fixedAt(100, 100, 400, 300))

			if got := w.HandleAt(tt.from); got != tt.handle {
				t.Fatalf("HandleAt(%v) = %v, want %v", tt.from, got, tt.handle)
			}
			if !w.GrabHandle(tt.from, tt.handle) {
				t.Fatal("GrabHandle() = false")
			}
			if !w.Move(tt.to) {
				t.Fatal("Move() = false")
			}
			assertRect(t, w.Bounds(), tt.want)

			if !w.Release() {
				t.Fatal("Release() = false")
			}
			assertRect(t, w.Bounds(), tt.want)
			if w.Dragging() {
				t.Error("still dragging after Release")
			}
		})
	}
}

func TestLeftEdgeClampKeepsRightEdge(t *testing.T) {
	opts := fixedAt(10, 10, 200, 100)
	opts.MinWidth = 150
	w, _ := newTestWindow(t, opts)

	if !w.Grab(types.Point{X: 12, Y: 50}, types.Modifiers{Left: 1, Width: -1}) {
		t.Fatal("Grab() = false")
	}
	w.Move(types.Point{X: 112, Y: 50})

	want := types.Rect{X: 60, Y: 10, Width: 150, Height: 100}
	assertRect(t, w.Bounds(), want)

	w.Release()
	assertRect(t, w.Bounds(), want)

	g := w.Geometry()
	if g.Left != length.Px(60) || g.Width != length.Px(150) {
		t.Errorf("Geometry() left=%v width=%v, want 60px 150px", g.Left, g.Width)
	}
}

func TestTopEdgeClampKeepsBottomEdge(t *testing.T) {
	w, _ := newTestWindow(t, fixedAt(100, 100, 400, 100))

	w.GrabHandle(types.Point{X: 300, Y: 101}, types.HandleTop)
	w.Move(types.Point{X: 300, Y: 301})
	w.Release()

	// minimum height is 32, bottom edge stays at 200
	assertRect(t, w.Bounds(), types.Rect{X: 100, Y: 168, Width: 400, Height: 32})
}

func TestClampTieLeavesGeometry(t *testing.T) {
	opts := fixedAt(10, 10, 200, 100)
	opts.MinWidth = 150
	w, _ := newTestWindow(t, opts)

	w.Grab(types.Point{X: 12, Y: 50}, types.Modifiers{Left: 1, Width: -1})
	w.Move(types.Point{X: 62, Y: 50})
	w.Release()

	assertRect(t, w.Bounds(), types.Rect{X: 60, Y: 10, Width: 150, Height: 100})
}

func TestTitleDragKeepsPositionWhenMinimumGrows(t *testing.T) {
	w, s := newTestWindow(t, fixedAt(100, 300, 208, 100))

	if !w.GrabHandle(types.Point{X: 400, Y: 110}, types.HandleTitle) {
		t.Fatal("GrabHandle() = false")
	}

	// nav bar grows to 28, minimum width to 262
	s.SetViewport(1280, 1200)
	if err := w.ViewportResized(); err != nil {
		t.Fatalf("ViewportResized() error: %v", err)
	}

	w.Move(types.Point{X: 410, Y: 110})
	want := types.Rect{X: 310, Y: 100, Width: 262, Height: 100}
	assertRect(t, w.Bounds(), want)

	w.Release()
	assertRect(t, w.Bounds(), want)
}

func TestRunningSumMatchesDisplacement(t *testing.T) {
	w, _ := newTestWindow(t, fixedAt(100, 100, 400, 300))

	w.GrabHandle(types.Point{X: 101, Y: 101}, types.HandleTopLeft)
	for _, p := range []types.Point{{X: 111, Y: 96}, {X: 91, Y: 121}, {X: 121, Y: 111}} {
		w.Move(p)
	}

	d := w.Drag()
	if d == nil {
		t.Fatal("Drag() = nil while dragging")
	}
	if !floatEquals(d.SumX, 20) || !floatEquals(d.SumY, 10) {
		t.Errorf("sum = %v,%v, want 20,10", d.SumX, d.SumY)
	}
	assertRect(t, w.Bounds(), types.Rect{X: 120, Y: 110, Width: 380, Height: 290})
}

func TestSecondGrabRejected(t *testing.T) {
	w, _ := newTestWindow(t, fixedAt(100, 100, 400, 300))

	if !w.GrabHandle(types.Point{X: 499, Y: 399}, types.HandleBottomRight) {
		t.Fatal("first grab rejected")
	}
	if w.GrabHandle(types.Point{X: 300, Y: 110}, types.HandleTitle) {
		t.Error("second grab accepted")
	}
	if w.RestoreAllowed() {
		t.Error("rejected title grab opened the restore gate")
	}
	if d := w.Drag(); d.Mods != types.HandleBottomRight.Modifiers() {
		t.Errorf("session modifiers = %+v, want bottom-right", d.Mods)
	}
}

func TestMoveWithoutSession(t *testing.T) {
	w, _ := newTestWindow(t, fixedAt(100, 100, 400, 300))
	before := w.Geometry()

	if w.Move(types.Point{X: 10, Y: 10}) {
		t.Error("Move() without session = true")
	}
	if w.Release() {
		t.Error("Release() without session = true")
	}
	if w.GrabHandle(types.Point{X: 300, Y: 200}, types.HandleNone) {
		t.Error("GrabHandle(None) = true")
	}
	if w.Geometry() != before {
		t.Error("geometry changed without a session")
	}
}

func TestGrabResizeSwitchesAutoToFixed(t *testing.T) {
	w, _ := newTestWindow(t, window.Options{Policy: window.Auto})

	w.GrabHandle(types.Point{X: 150, Y: 105}, types.HandleTitle)
	if w.Policy() != window.Auto {
		t.Errorf("title grab changed policy to %v", w.Policy())
	}
	w.Release()

	w.GrabHandle(types.Point{X: 299, Y: 199}, types.HandleBottomRight)
	if w.Policy() != window.Fixed {
		t.Errorf("resize grab policy = %v, want Fixed", w.Policy())
	}
	g := w.Geometry()
	if g.Width != length.Px(300) || g.Height != length.Px(200) {
		t.Errorf("fixated size = %v x %v, want 300px x 200px", g.Width, g.Height)
	}

	w.Move(types.Point{X: 349, Y: 219})
	assertRect(t, w.Bounds(), types.Rect{X: 0, Y: 0, Width: 350, Height: 220})
}

func TestMidDragRestoreRebase(t *testing.T) {
	w, _ := newTestWindow(t, fixedAt(100, 100, 400, 300))
	if err := w.Maximize(); err != nil {
		t.Fatalf("Maximize: %v", err)
	}
	assertRect(t, w.Bounds(), types.Rect{X: 0, Y: 0, Width: 1280, Height: 800})

	grab := types.Point{X: 640, Y: 10}
	if got := w.HandleAt(grab); got != types.HandleTitle {
		t.Fatalf("HandleAt(%v) = %v, want title", grab, got)
	}
	w.GrabHandle(grab, types.HandleTitle)
	w.Move(types.Point{X: 650, Y: 20})

	if w.Policy() != window.Fixed {
		t.Errorf("policy after restore = %v, want Fixed", w.Policy())
	}
	if w.Snapshot() != nil {
		t.Error("snapshot survived restore")
	}

	b := w.Bounds()
	assertRect(t, b, types.Rect{X: 450, Y: 10, Width: 400, Height: 300})
	if frac := (650 - b.X) / b.Width; !floatEquals(frac, 0.5) {
		t.Errorf("pointer fraction = %v, want 0.5", frac)
	}

	// later moves carry on from the rebased anchor
	w.Move(types.Point{X: 700, Y: 40})
	assertRect(t, w.Bounds(), types.Rect{X: 500, Y: 30, Width: 400, Height: 300})
	w.Release()
}

func TestResizeDragDiscardsSnapshot(t *testing.T) {
	w, _ := newTestWindow(t, fixedAt(100, 100, 400, 300))
	w.Maximize()

	w.GrabHandle(types.Point{X: 1279, Y: 799}, types.HandleBottomRight)
	w.Move(types.Point{X: 1179, Y: 699})

	if w.Snapshot() != nil {
		t.Error("resize drag kept the snapshot")
	}
	if w.Policy() != window.Relative {
		t.Errorf("policy = %v, want Relative", w.Policy())
	}
	assertRect(t, w.Bounds(), types.Rect{X: 0, Y: 0, Width: 1180, Height: 700})
}

func TestHandleAt(t *testing.T) {
	w, _ := newTestWindow(t, fixedAt(100, 100, 400, 300))

	tests := []struct {
		point types.Point
		want  types.Handle
	}{
		{types.Point{X: 101, Y: 101}, types.HandleTopLeft},
		{types.Point{X: 498, Y: 101}, types.HandleTopRight},
		{types.Point{X: 101, Y: 398}, types.HandleBottomLeft},
		{types.Point{X: 498, Y: 398}, types.HandleBottomRight},
		{types.Point{X: 300, Y: 101}, types.HandleTop},
		{types.Point{X: 300, Y: 398}, types.HandleBottom},
		{types.Point{X: 101, Y: 200}, types.HandleLeft},
		{types.Point{X: 498, Y: 200}, types.HandleRight},
		{types.Point{X: 300, Y: 110}, types.HandleTitle},
		{types.Point{X: 300, Y: 126}, types.HandleTitle},
		{types.Point{X: 300, Y: 200}, types.HandleNone},
		{types.Point{X: 50, Y: 50}, types.HandleNone},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := w.HandleAt(tt.point); got != tt.want {
				t.Errorf("HandleAt(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}
