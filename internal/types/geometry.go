package types

// Rect represents pixel bounds in viewport coordinates
type Rect struct {
	X      float64 `json:"x"`      // Left edge (pixels from viewport left)
	Y      float64 `json:"y"`      // Top edge (pixels from viewport top)
	Width  float64 `json:"width"`  // Width in pixels
	Height float64 `json:"height"` // Height in pixels
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of a Rect
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point is inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Modifiers map pointer displacement onto the four geometry fields.
// Each field is -1, 0 or 1.
type Modifiers struct {
	Top    int `json:"top" yaml:"top"`
	Left   int `json:"left" yaml:"left"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Resizes reports whether any size field moves with the pointer
func (m Modifiers) Resizes() bool {
	return m.Width != 0 || m.Height != 0
}

// Handle identifies the part of the window chrome a drag starts on
type Handle int

const (
	HandleNone Handle = iota
	HandleTitle
	HandleTop
	HandleBottom
	HandleLeft
	HandleRight
	HandleTopLeft
	HandleTopRight
	HandleBottomLeft
	HandleBottomRight
)

var handleNames = map[Handle]string{
	HandleNone:        "none",
	HandleTitle:       "title",
	HandleTop:         "top",
	HandleBottom:      "bottom",
	HandleLeft:        "left",
	HandleRight:       "right",
	HandleTopLeft:     "top-left",
	HandleTopRight:    "top-right",
	HandleBottomLeft:  "bottom-left",
	HandleBottomRight: "bottom-right",
}

// String returns the string representation of a Handle
func (h Handle) String() string {
	if name, ok := handleNames[h]; ok {
		return name
	}
	return "unknown"
}

// ParseHandle converts a string to Handle
func ParseHandle(s string) (Handle, bool) {
	for h, name := range handleNames {
		if name == s {
			return h, true
		}
	}
	return HandleNone, false
}

// Modifiers returns the displacement multipliers for the handle
func (h Handle) Modifiers() Modifiers {
	switch h {
	case HandleTitle:
		return Modifiers{Top: 1, Left: 1}
	case HandleTop:
		return Modifiers{Top: 1, Height: -1}
	case HandleBottom:
		return Modifiers{Height: 1}
	case HandleLeft:
		return Modifiers{Left: 1, Width: -1}
	case HandleRight:
		return Modifiers{Width: 1}
	case HandleTopLeft:
		return Modifiers{Top: 1, Left: 1, Width: -1, Height: -1}
	case HandleTopRight:
		return Modifiers{Top: 1, Width: 1, Height: -1}
	case HandleBottomLeft:
		return Modifiers{Left: 1, Width: -1, Height: 1}
	case HandleBottomRight:
		return Modifiers{Width: 1, Height: 1}
	default:
		return Modifiers{}
	}
}
