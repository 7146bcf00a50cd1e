package types

import "testing"

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want Point
	}{
		{
			name: "origin rect",
			rect: Rect{X: 0, Y: 0, Width: 100, Height: 100},
			want: Point{X: 50, Y: 50},
		},
		{
			name: "offset rect",
			rect: Rect{X: 100, Y: 200, Width: 50, Height: 80},
			want: Point{X: 125, Y: 240},
		},
		{
			name: "zero size",
			rect: Rect{X: 10, Y: 20, Width: 0, Height: 0},
			want: Point{X: 10, Y: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rect.Center()
			if got.X != tt.want.X || got.Y != tt.want.Y {
				t.Errorf("Center() = (%v, %v), want (%v, %v)", got.X, got.Y, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"center point", Point{X: 50, Y: 50}, true},
		{"top-left corner", Point{X: 0, Y: 0}, true},
		{"bottom-right corner", Point{X: 100, Y: 100}, true},
		{"outside right", Point{X: 150, Y: 50}, false},
		{"outside left", Point{X: -10, Y: 50}, false},
		{"outside top", Point{X: 50, Y: -10}, false},
		{"outside bottom", Point{X: 50, Y: 150}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rect.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestHandleString(t *testing.T) {
	tests := []struct {
		handle Handle
		want   string
	}{
		{HandleNone, "none"},
		{HandleTitle, "title"},
		{HandleTopLeft, "top-left"},
		{HandleBottomRight, "bottom-right"},
		{Handle(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.handle.String(); got != tt.want {
				t.Errorf("Handle.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseHandle(t *testing.T) {
	for h := HandleNone; h <= HandleBottomRight; h++ {
		got, ok := ParseHandle(h.String())
		if !ok || got != h {
			t.Errorf("ParseHandle(%q) = %v, %v", h.String(), got, ok)
		}
	}
	if _, ok := ParseHandle("middle"); ok {
		t.Error("ParseHandle(middle) should fail")
	}
}

func TestHandleModifiers(t *testing.T) {
	tests := []struct {
		handle Handle
		want   Modifiers
	}{
		{HandleNone, Modifiers{}},
		{HandleTitle, Modifiers{Top: 1, Left: 1}},
		{HandleTop, Modifiers{Top: 1, Height: -1}},
		{HandleBottom, Modifiers{Height: 1}},
		{HandleLeft, Modifiers{Left: 1, Width: -1}},
		{HandleRight, Modifiers{Width: 1}},
		{HandleTopLeft, Modifiers{Top: 1, Left: 1, Width: -1, Height: -1}},
		{HandleTopRight, Modifiers{Top: 1, Width: 1, Height: -1}},
		{HandleBottomLeft, Modifiers{Left: 1, Width: -1, Height: 1}},
		{HandleBottomRight, Modifiers{Width: 1, Height: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.handle.String(), func(t *testing.T) {
			if got := tt.handle.Modifiers(); got != tt.want {
				t.Errorf("Modifiers() = %+v, want %+v", got, tt.want)
			}
			if resizes := tt.want.Width != 0 || tt.want.Height != 0; tt.handle.Modifiers().Resizes() != resizes {
				t.Errorf("Resizes() = %v, want %v", !resizes, resizes)
			}
		})
	}
}
