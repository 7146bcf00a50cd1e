package scenario

import (
	"fmt"
	"math"
	"strings"

	"github.com/yourusername/floatwin/internal/length"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/surface"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

// StepResult is the window state after one step
type StepResult struct {
	Index    int
	Action   string
	Policy   window.Policy
	Bounds   types.Rect
	Snapshot bool
	Dragging bool
	Err      error    // command error
	Failures []string // unmet expectations
}

// OK reports whether the step ran without error or unmet expectation
func (r *StepResult) OK() bool {
	return r.Err == nil && len(r.Failures) == 0
}

// Result is the outcome of a whole script
type Result struct {
	Name   string
	Steps  []StepResult
	Window *window.Window
}

// Passed reports whether every step succeeded
func (r *Result) Passed() bool {
	for i := range r.Steps {
		if !r.Steps[i].OK() {
			return false
		}
	}
	return true
}

// Failed returns the steps that did not succeed
func (r *Result) Failed() []StepResult {
	var failed []StepResult
	for _, st := range r.Steps {
		if !st.OK() {
			failed = append(failed, st)
		}
	}
	return failed
}

// Run replays the script on a fresh window. Command errors and unmet
// expectations are recorded per step; the run continues past them.
func Run(s *Script) (*Result, error) {
	opts, err := s.Window.Options()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}

	mem := surface.NewMemory(s.Display.Width, s.Display.Height, s.Display.ContentWidth, s.Display.ContentHeight)
	w, err := window.New(mem, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	res := &Result{Name: s.Name, Window: w}
	for i := range s.Steps {
		st := &s.Steps[i]
		sr := StepResult{Index: i + 1, Action: st.Action()}

		sr.Err = apply(w, mem, st)
		if st.Expect != nil {
			sr.Failures = check(w, st.Expect, s.Tolerance)
		}

		sr.Policy = w.Policy()
		sr.Bounds = w.Bounds()
		sr.Snapshot = w.Snapshot() != nil
		sr.Dragging = w.Dragging()
		res.Steps = append(res.Steps, sr)

		if !sr.OK() {
			logging.Debug().
				Str("scenario", s.Name).
				Int("step", sr.Index).
				Str("action", sr.Action).
				AnErr("error", sr.Err).
				Strs("failures", sr.Failures).
				Msg("step failed")
		}
	}

	return res, nil
}

func apply(w *window.Window, mem *surface.Memory, st *Step) error {
	switch {
	case st.Grab != nil:
		p := types.Point{X: st.Grab.X, Y: st.Grab.Y}
		h := w.HandleAt(p)
		if st.Grab.Handle != "" {
			h, _ = types.ParseHandle(st.Grab.Handle)
		}
		w.GrabHandle(p, h)
	case st.Move != nil:
		w.Move(types.Point{X: st.Move.X, Y: st.Move.Y})
	case st.Release:
		w.Release()
	case st.Command != "":
		return runCommand(w, st.Command)
	case st.Dock != nil:
		return w.Dock(st.Dock.Row, st.Dock.Col, st.Dock.Autosize)
	case st.Policy != "":
		p, err := window.ParsePolicy(st.Policy)
		if err != nil {
			return err
		}
		return w.SetPolicy(p)
	case st.Viewport != nil:
		mem.SetViewport(st.Viewport.Width, st.Viewport.Height)
		return w.ViewportResized()
	case st.Content != nil:
		mem.SetNaturalSize(st.Content.Width, st.Content.Height)
		return w.ContentResized()
	}
	return nil
}

func runCommand(w *window.Window, name string) error {
	switch name {
	case "maximize":
		return w.Maximize()
	case "minimize":
		return w.Minimize()
	case "doubleclick":
		return w.TitleBarDoubleClick()
	case "float":
		return w.ApplyBasicFloatingStyle()
	case "close":
		return w.Close()
	}
	return fmt.Errorf("unknown command %q", name)
}

func check(w *window.Window, e *Expectation, tol float64) []string {
	var failures []string
	fail := func(format string, args ...any) {
		failures = append(failures, fmt.Sprintf(format, args...))
	}

	if e.Policy != "" && !strings.EqualFold(e.Policy, string(w.Policy())) {
		fail("policy = %s, want %s", w.Policy(), e.Policy)
	}

	b := w.Bounds()
	for _, f := range []struct {
		name string
		want *float64
		got  float64
	}{
		{"x", e.X, b.X},
		{"y", e.Y, b.Y},
		{"width", e.Width, b.Width},
		{"height", e.Height, b.Height},
	} {
		if f.want != nil && math.Abs(f.got-*f.want) > tol {
			fail("%s = %g, want %g", f.name, f.got, *f.want)
		}
	}

	if e.Snapshot != nil && (w.Snapshot() != nil) != *e.Snapshot {
		fail("snapshot = %v, want %v", w.Snapshot() != nil, *e.Snapshot)
	}
	if e.Dragging != nil && w.Dragging() != *e.Dragging {
		fail("dragging = %v, want %v", w.Dragging(), *e.Dragging)
	}
	if e.Closed != nil && w.Closed() != *e.Closed {
		fail("closed = %v, want %v", w.Closed(), *e.Closed)
	}

	g := w.Geometry()
	for _, f := range []struct {
		name string
		want string
		got  length.Expr
	}{
		{"top", e.Top, g.Top},
		{"left", e.Left, g.Left},
		{"width", e.WidthExpr, g.Width},
		{"height", e.HeightExpr, g.Height},
	} {
		if f.want == "" {
			continue
		}
		want, err := length.ParseStrict(f.want)
		if err != nil {
			fail("%s: %v", f.name, err)
			continue
		}
		if !exprClose(f.got, want, tol) {
			fail("%s = %s, want %s", f.name, f.got, want)
		}
	}

	return failures
}

func exprClose(a, b length.Expr, tol float64) bool {
	return math.Abs(a.Px-b.Px) <= tol &&
		math.Abs(a.Vw-b.Vw) <= tol &&
		math.Abs(a.Vh-b.Vh) <= tol &&
		math.Abs(a.Pct-b.Pct) <= tol
}
