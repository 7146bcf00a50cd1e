package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/yourusername/floatwin/internal/models"
	"github.com/yourusername/floatwin/internal/scenario"
)

// PrintGeometryTable prints the window geometry in policy units next to
// its rendered pixels
func PrintGeometryTable(w io.Writer, state *models.WindowState) {
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value", "Pixels")

	g := state.Geometry
	b := state.Bounds
	table.Append("top", g.Top, formatPx(b.Y))
	table.Append("left", g.Left, formatPx(b.X))
	table.Append("width", g.Width, formatPx(b.Width))
	table.Append("height", g.Height, formatPx(b.Height))
	table.Append("min", "", fmt.Sprintf("%.0fx%.0f", g.MinWidth, g.MinHeight))

	table.Render()
}

// PrintWindowDetail prints detailed information about the window
func PrintWindowDetail(w io.Writer, state *models.WindowState) {
	fmt.Fprintf(w, "Window ID: %s\n", state.ID)
	fmt.Fprintf(w, "Policy: %s\n", state.Policy)
	fmt.Fprintf(w, "Frame: %s\n", state.FormatFrame())
	fmt.Fprintf(w, "Viewport: %.0fx%.0f\n", state.Viewport.Width, state.Viewport.Height)
	fmt.Fprintf(w, "Title bar: %.1fpx, sizer %.0fpx, radius %.0fpx\n",
		state.Chrome.NavBar, state.Chrome.Sizer, state.Chrome.BorderRadius)
	if s := state.Snapshot; s != nil {
		fmt.Fprintf(w, "Snapshot: %s %s,%s %sx%s\n", s.Policy, s.Left, s.Top, s.Width, s.Height)
	} else {
		fmt.Fprintln(w, "Snapshot: -")
	}
	fmt.Fprintf(w, "Dragging: %v\n", state.Dragging)
	fmt.Fprintf(w, "Closed: %v\n", state.Closed)
}

// PrintScenarioTable prints one row per scenario step
func PrintScenarioTable(w io.Writer, res *scenario.Result) {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Action", "Policy", "Frame", "Snapshot", "Result")

	for _, st := range res.Steps {
		status := "ok"
		switch {
		case st.Err != nil:
			status = "error: " + st.Err.Error()
		case len(st.Failures) > 0:
			status = "FAIL: " + strings.Join(st.Failures, "; ")
		}

		snap := ""
		if st.Snapshot {
			snap = "saved"
		}

		table.Append(
			fmt.Sprintf("%d", st.Index),
			truncate(st.Action, 32),
			string(st.Policy),
			fmt.Sprintf("%.0fx%.0f @ (%.0f, %.0f)", st.Bounds.Width, st.Bounds.Height, st.Bounds.X, st.Bounds.Y),
			snap,
			truncate(status, 60),
		)
	}

	table.Render()
}

// Helper functions

func formatPx(v float64) string {
	return fmt.Sprintf("%.1fpx", v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
