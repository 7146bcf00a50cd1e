package output

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/models"
	"github.com/yourusername/floatwin/internal/types"
)

// VisualizationOptions controls the appearance of the visualization
type VisualizationOptions struct {
	UseUnicode   bool
	ShowSnapshot bool
	MaxWidth     int
	MaxHeight    int
}

// DefaultVisualizationOptions returns sensible defaults
func DefaultVisualizationOptions() VisualizationOptions {
	width, height := getTerminalSize()
	return VisualizationOptions{
		UseUnicode:   supportsUnicode(),
		ShowSnapshot: true,
		MaxWidth:     width,
		MaxHeight:    height - 4, // header and footer
	}
}

// VisualizeWindow renders the window inside its viewport with a header
// and footer describing it
func VisualizeWindow(state *models.WindowState, opts VisualizationOptions) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Viewport %.0fx%.0f  Window %s [%s]\n",
		state.Viewport.Width, state.Viewport.Height, truncate(state.ID, 8), state.Policy)
	sb.WriteString(RenderWindow(state, opts))
	sb.WriteString("\n")

	switch {
	case state.Closed:
		sb.WriteString("(closed)\n")
	case state.Snapshot != nil:
		s := state.Snapshot
		fmt.Fprintf(&sb, "Frame %s  snapshot %s %sx%s\n", state.FormatFrame(), s.Policy, s.Width, s.Height)
	default:
		fmt.Fprintf(&sb, "Frame %s\n", state.FormatFrame())
	}

	return sb.String()
}

// RenderWindow draws the viewport border, the window box with its title
// bar, and the saved snapshot as a dotted outline
func RenderWindow(state *models.WindowState, opts VisualizationOptions) string {
	sc := NewScalingContext(state.Viewport.Width, state.Viewport.Height, opts.MaxWidth, opts.MaxHeight)
	canvas := NewCanvas(sc.TermWidth, sc.TermHeight, opts.UseUnicode)

	canvas.DrawBox(0, 0, sc.TermWidth, sc.TermHeight)
	if state.Closed {
		return canvas.String()
	}

	x, y, w, h := sc.ClampToCanvas(sc.ScaleRect(state.Bounds))
	canvas.DrawBox(x, y, w, h)

	titleRows := max(1, int(math.Ceil(state.Chrome.NavBar*sc.ScaleY)))
	if sep := y + 1 + titleRows; sep < y+h-1 {
		canvas.DrawSeparator(x, sep, w)
	}

	label := fmt.Sprintf(" %s %.0fx%.0f ", state.Policy, state.Bounds.Width, state.Bounds.Height)
	if w > 2 {
		canvas.DrawTextCentered(x+1, y, w-2, label)
	}

	if opts.ShowSnapshot && state.Snapshot != nil {
		ghost := snapshotBounds(state)
		gx, gy, gw, gh := sc.ClampToCanvas(sc.ScaleRect(ghost))
		canvas.DrawDottedBox(gx, gy, gw, gh)
	}

	return canvas.String()
}

// snapshotBounds resolves the snapshot against the current viewport
func snapshotBounds(state *models.WindowState) types.Rect {
	s := state.Snapshot
	ctx := length.Viewport(state.Viewport.Width, state.Viewport.Height)
	return types.Rect{
		X:      s.Left.Pixels(length.AxisWidth, ctx),
		Y:      s.Top.Pixels(length.AxisHeight, ctx),
		Width:  max(s.Width.Pixels(length.AxisWidth, ctx), state.Geometry.MinWidth),
		Height: max(s.Height.Pixels(length.AxisHeight, ctx), state.Geometry.MinHeight),
	}
}

// getTerminalSize returns the current terminal dimensions
func getTerminalSize() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		// Default to 80x24 if we can't detect
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// supportsUnicode checks if the terminal supports Unicode
func supportsUnicode() bool {
	lang := os.Getenv("LANG")
	lcAll := os.Getenv("LC_ALL")

	return strings.Contains(lang, "UTF-8") || strings.Contains(lcAll, "UTF-8")
}

// PrintVisualization prints a colored visualization
func PrintVisualization(out io.Writer, state *models.WindowState, opts VisualizationOptions) {
	result := VisualizeWindow(state, opts)

	if color.NoColor {
		fmt.Fprint(out, result)
		return
	}
	cyan := color.New(color.FgCyan)
	cyan.Fprint(out, result)
}
