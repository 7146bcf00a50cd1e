package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/models"
	"github.com/yourusername/floatwin/internal/scenario"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

func fixedState() *models.WindowState {
	return &models.WindowState{
		ID:     "abc",
		Policy: "Fixed",
		Geometry: models.GeometryState{
			Top: "100px", Left: "100px", Width: "400px", Height: "300px",
			MinWidth: 208, MinHeight: 32,
		},
		Bounds:   types.Rect{X: 100, Y: 100, Width: 400, Height: 300},
		Viewport: models.ViewportState{Width: 1280, Height: 800},
		Chrome:   models.ChromeState{NavBar: 22, Sizer: 5, BorderRadius: 5},
	}
}

var asciiOpts = VisualizationOptions{ShowSnapshot: true, MaxWidth: 66, MaxHeight: 40}

func TestRenderWindow(t *testing.T) {
	lines := strings.Split(RenderWindow(fixedState(), asciiOpts), "\n")

	if len(lines) != 22 {
		t.Fatalf("got %d lines, want 22", len(lines))
	}
	if len(lines[0]) != 66 || lines[0][0] != '+' || lines[0][65] != '+' {
		t.Errorf("viewport border = %q", lines[0])
	}

	tests := []struct {
		name string
		row  int
		col  int
		want byte
	}{
		{"top-left corner", 3, 6, '+'},
		{"top-right corner", 3, 25, '+'},
		{"bottom-left corner", 10, 6, '+'},
		{"bottom-right corner", 10, 25, '+'},
		{"title separator", 5, 6, '+'},
		{"separator line", 5, 7, '-'},
		{"left edge", 7, 6, '|'},
		{"interior", 7, 10, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lines[tt.row][tt.col]; got != tt.want {
				t.Errorf("cell (%d, %d) = %q, want %q", tt.row, tt.col, got, tt.want)
			}
		})
	}

	if !strings.Contains(lines[3], "Fixed 400x300") {
		t.Errorf("title row %q missing label", lines[3])
	}
}

func TestRenderSnapshotGhost(t *testing.T) {
	state := fixedState()
	state.Policy = "Relative"
	state.Bounds = types.Rect{X: 0, Y: 0, Width: 1280, Height: 800}
	state.Snapshot = &window.Snapshot{
		Policy: window.Fixed,
		Top:    length.Px(100),
		Left:   length.Px(100),
		Width:  length.Px(400),
		Height: length.Px(300),
	}

	lines := strings.Split(RenderWindow(state, asciiOpts), "\n")
	if got := lines[10][6]; got != '.' {
		t.Errorf("ghost corner = %q, want '.'", got)
	}
	if got := lines[1][1]; got != '+' {
		t.Errorf("maximized corner = %q, want '+'", got)
	}

	opts := asciiOpts
	opts.ShowSnapshot = false
	lines = strings.Split(RenderWindow(state, opts), "\n")
	if got := lines[10][6]; got != ' ' {
		t.Errorf("ghost drawn with ShowSnapshot off: %q", got)
	}
}

func TestVisualizeClosed(t *testing.T) {
	state := fixedState()
	state.Closed = true

	out := VisualizeWindow(state, asciiOpts)
	if !strings.Contains(out, "(closed)") {
		t.Errorf("output missing closed marker:\n%s", out)
	}
	if strings.Contains(out, "Fixed 400x300") {
		t.Errorf("closed window still drawn:\n%s", out)
	}
}

func TestScalingContextFitsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		vw, vh float64
		termW  int
		termH  int
	}{
		{"wide", 1920, 1080, 80, 24},
		{"tall", 400, 1600, 80, 24},
		{"tiny terminal", 1280, 800, 4, 2},
		{"zero viewport", 0, 0, 80, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewScalingContext(tt.vw, tt.vh, tt.termW, tt.termH)
			if sc.TermWidth > max(tt.termW, 12) || sc.TermHeight > max(tt.termH, 6) {
				t.Errorf("canvas %dx%d exceeds terminal %dx%d", sc.TermWidth, sc.TermHeight, tt.termW, tt.termH)
			}
			x, y := sc.PixelToTerminal(0, 0)
			if x != 1 || y != 1 {
				t.Errorf("origin = (%d, %d), want (1, 1)", x, y)
			}
		})
	}
}

func TestPrintGeometryTable(t *testing.T) {
	var buf bytes.Buffer
	PrintGeometryTable(&buf, fixedState())

	out := buf.String()
	for _, want := range []string{"top", "100px", "400.0px", "208x32"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestPrintScenarioTable(t *testing.T) {
	res := &scenario.Result{
		Name: "demo",
		Steps: []scenario.StepResult{
			{Index: 0, Action: "grab 10,10", Policy: window.Fixed, Bounds: types.Rect{Width: 400, Height: 300}},
			{Index: 1, Action: "maximize", Policy: window.Relative, Failures: []string{"x = 5, want 0"}},
			{Index: 2, Action: "dock 4,0", Policy: window.Relative, Err: errors.New("dock out of range")},
		},
	}

	var buf bytes.Buffer
	PrintScenarioTable(&buf, res)

	out := buf.String()
	for _, want := range []string{"grab 10,10", "400x300 @ (0, 0)", "FAIL: x = 5, want 0", "error: dock out of range"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated text", 8, "trunc..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
