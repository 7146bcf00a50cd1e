package surface

import (
	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

// Memory is a surface that renders into a struct.
// Bounds reflect the last applied frame the way a browser would lay it out.
type Memory struct {
	viewport length.Context
	naturalW float64
	naturalH float64

	frame    window.Frame
	applied  bool
	applies  int
	detached bool

	// OnApply, when set, is called after every frame write
	OnApply func(frame window.Frame, bounds types.Rect)
}

// NewMemory creates a surface with a viewport and content natural size
func NewMemory(viewportWidth, viewportHeight, contentWidth, contentHeight float64) *Memory {
	return &Memory{
		viewport: length.Viewport(viewportWidth, viewportHeight),
		naturalW: contentWidth,
		naturalH: contentHeight,
	}
}

// Viewport implements window.Surface
func (m *Memory) Viewport() length.Context {
	return m.viewport
}

// SetViewport changes the viewport; callers notify the window afterwards
func (m *Memory) SetViewport(width, height float64) {
	m.viewport.ViewportWidth = width
	m.viewport.ViewportHeight = height
}

// SetContainer sets an explicit container size for percentages
func (m *Memory) SetContainer(width, height float64) {
	m.viewport.ContainerWidth = width
	m.viewport.ContainerHeight = height
}

// NaturalSize implements window.Surface
func (m *Memory) NaturalSize() (float64, float64) {
	return m.naturalW, m.naturalH
}

// SetNaturalSize changes the content size; callers notify the window afterwards
func (m *Memory) SetNaturalSize(width, height float64) {
	m.naturalW = width
	m.naturalH = height
}

// Bounds implements window.Surface. Before the first frame the window
// sits at the origin at its natural size.
func (m *Memory) Bounds() types.Rect {
	if !m.applied {
		return types.Rect{Width: m.naturalW, Height: m.naturalH}
	}
	return m.frame.Resolve(m.viewport)
}

// Apply implements window.Surface
func (m *Memory) Apply(frame window.Frame) {
	m.frame = frame
	m.applied = true
	m.applies++
	if m.OnApply != nil {
		m.OnApply(frame, m.Bounds())
	}
}

// Detach implements window.Surface
func (m *Memory) Detach() {
	m.detached = true
}

// Frame returns the last applied frame and whether one was applied
func (m *Memory) Frame() (window.Frame, bool) {
	return m.frame, m.applied
}

// Applies returns how many frames have been written
func (m *Memory) Applies() int {
	return m.applies
}

// Detached reports whether the window was closed
func (m *Memory) Detached() bool {
	return m.detached
}
