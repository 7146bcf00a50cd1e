package output

import (
	"strings"
)

// BoxStyle defines the character set for drawing boxes
type BoxStyle struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
	TeeLeft     rune
	TeeRight    rune
	Dotted      rune
}

var (
	// ASCIIStyle uses simple ASCII characters for box drawing
	ASCIIStyle = BoxStyle{
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Horizontal:  '-',
		Vertical:    '|',
		TeeLeft:     '+',
		TeeRight:    '+',
		Dotted:      '.',
	}

	// UnicodeStyle uses Unicode box drawing characters
	UnicodeStyle = BoxStyle{
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Horizontal:  '─',
		Vertical:    '│',
		TeeLeft:     '├',
		TeeRight:    '┤',
		Dotted:      '·',
	}
)

// Canvas represents a 2D character buffer for drawing
type Canvas struct {
	Width  int
	Height int
	buffer [][]rune
	style  BoxStyle
}

// NewCanvas creates a new canvas with the specified dimensions
func NewCanvas(width, height int, useUnicode bool) *Canvas {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
		for j := range buffer[i] {
			buffer[i][j] = ' '
		}
	}

	style := ASCIIStyle
	if useUnicode {
		style = UnicodeStyle
	}

	return &Canvas{
		Width:  width,
		Height: height,
		buffer: buffer,
		style:  style,
	}
}

// SetCell sets a character at the specified position
func (c *Canvas) SetCell(x, y int, r rune) {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		c.buffer[y][x] = r
	}
}

// GetCell returns the character at the specified position
func (c *Canvas) GetCell(x, y int) rune {
	if x >= 0 && x < c.Width && y >= 0 && y < c.Height {
		return c.buffer[y][x]
	}
	return ' '
}

// DrawBox draws a box with the specified position and size
func (c *Canvas) DrawBox(x, y, width, height int) {
	if width < 2 || height < 2 {
		return // Box too small to draw
	}

	// Draw corners
	c.SetCell(x, y, c.style.TopLeft)
	c.SetCell(x+width-1, y, c.style.TopRight)
	c.SetCell(x, y+height-1, c.style.BottomLeft)
	c.SetCell(x+width-1, y+height-1, c.style.BottomRight)

	// Draw horizontal lines
	for i := 1; i < width-1; i++ {
		c.SetCell(x+i, y, c.style.Horizontal)
		c.SetCell(x+i, y+height-1, c.style.Horizontal)
	}

	// Draw vertical lines
	for i := 1; i < height-1; i++ {
		c.SetCell(x, y+i, c.style.Vertical)
		c.SetCell(x+width-1, y+i, c.style.Vertical)
	}
}

// DrawSeparator draws a horizontal rule across a box at row y,
// joining its vertical edges
func (c *Canvas) DrawSeparator(x, y, width int) {
	if width < 2 {
		return
	}
	c.SetCell(x, y, c.style.TeeLeft)
	for i := 1; i < width-1; i++ {
		c.SetCell(x+i, y, c.style.Horizontal)
	}
	c.SetCell(x+width-1, y, c.style.TeeRight)
}

// DrawDottedBox outlines a box without overwriting cells already drawn
func (c *Canvas) DrawDottedBox(x, y, width, height int) {
	if width < 2 || height < 2 {
		return
	}
	dot := func(cx, cy int) {
		if c.GetCell(cx, cy) == ' ' {
			c.SetCell(cx, cy, c.style.Dotted)
		}
	}
	for i := 0; i < width; i++ {
		dot(x+i, y)
		dot(x+i, y+height-1)
	}
	for i := 1; i < height-1; i++ {
		dot(x, y+i)
		dot(x+width-1, y+i)
	}
}

// DrawText writes text at the specified position
func (c *Canvas) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		c.SetCell(x+i, y, r)
		i++
	}
}

// DrawTextCentered writes text centered within a width
func (c *Canvas) DrawTextCentered(x, y, width int, text string) {
	runes := []rune(text)
	if len(runes) >= width {
		c.DrawText(x, y, string(runes[:max(width, 0)]))
		return
	}
	padding := (width - len(runes)) / 2
	c.DrawText(x+padding, y, text)
}

// String renders the canvas to a string
func (c *Canvas) String() string {
	var sb strings.Builder
	for i, row := range c.buffer {
		for _, cell := range row {
			sb.WriteRune(cell)
		}
		if i < len(c.buffer)-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
