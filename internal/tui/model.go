package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/floatwin/internal/eventloop"
	"github.com/yourusername/floatwin/internal/logging"
	"github.com/yourusername/floatwin/internal/models"
	"github.com/yourusername/floatwin/internal/output"
	"github.com/yourusername/floatwin/internal/types"
	"github.com/yourusername/floatwin/internal/window"
)

const (
	// Pixel size of one terminal cell
	CellWidth  = 8
	CellHeight = 16

	// Sizer thickness that makes border cells hit the resize handles
	Sizer = 10

	// Status bar and help bar
	chromeRows = 2

	doubleClickInterval = 400 * time.Millisecond
)

// model is the bubbletea model hosting one floating window. The terminal
// is the viewport; each cell covers CellWidth x CellHeight pixels.
type model struct {
	win     *window.Window
	surface window.Surface
	unicode bool

	width  int
	height int

	lastPress    time.Time
	lastPressPos types.Point
	now          func() time.Time

	status string
}

func newModel(w *window.Window, s window.Surface, unicode bool) model {
	return model{
		win:     w,
		surface: s,
		unicode: unicode,
		now:     time.Now,
	}
}

// ViewportFor returns the pixel viewport of a terminal of the given size
func ViewportFor(cols, rows int) (float64, float64) {
	w := max(cols-2, 1) * CellWidth
	h := max(rows-chromeRows-2, 1) * CellHeight
	return float64(w), float64(h)
}

// toPixels maps a screen cell to the pixel at its center. The canvas
// starts one row down and has a one cell border.
func toPixels(col, row int) types.Point {
	return types.Point{
		X: float64(col-1)*CellWidth + CellWidth/2,
		Y: float64(row-2)*CellHeight + CellHeight/2,
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// apply runs an event and keeps the error for the status bar
func (m *model) apply(ev eventloop.Event) {
	if err := ev.Apply(m.win, m.surface); err != nil {
		m.status = err.Error()
		logging.Debug().Err(err).Msg("tui event failed")
		return
	}
	m.status = ""
}

func (m *model) command(fn func() error) {
	if err := fn(); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vw, vh := ViewportFor(msg.Width, msg.Height)
		m.apply(eventloop.ViewportResize{Width: vw, Height: vh})
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := toPixels(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		now := m.now()
		double := now.Sub(m.lastPress) <= doubleClickInterval && p == m.lastPressPos
		m.lastPressPos = p
		if double {
			m.lastPress = time.Time{}
			m.apply(eventloop.DoubleClick{P: p})
			return m, nil
		}
		m.lastPress = now
		m.apply(eventloop.PointerDown{P: p})

	case tea.MouseActionMotion:
		m.apply(eventloop.PointerMove{P: p})

	case tea.MouseActionRelease:
		m.apply(eventloop.PointerUp{})
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "m":
		m.command(m.win.Maximize)
	case "n":
		m.command(m.win.Minimize)
	case "f":
		m.command(m.win.ApplyBasicFloatingStyle)
	case "d":
		m.command(m.win.TitleBarDoubleClick)
	case "r":
		m.win.AllowRestoration()
		if !m.win.Restore(true, true, true) {
			m.status = "nothing to restore"
		}
	case "p":
		m.command(func() error { return m.win.SetPolicy(nextPolicy(m.win.Policy())) })
	case "c":
		m.command(m.win.Close)

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(key[0] - '1')
		m.command(func() error { return m.win.Dock(i/3, i%3, true) })
	}

	return m, nil
}

func nextPolicy(p window.Policy) window.Policy {
	for i, q := range window.Policies {
		if q == p {
			return window.Policies[(i+1)%len(window.Policies)]
		}
	}
	return window.Fixed
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	state := models.NewWindowState(m.win)
	canvas := output.RenderWindow(state, output.VisualizationOptions{
		UseUnicode:   m.unicode,
		ShowSnapshot: true,
		MaxWidth:     m.width,
		MaxHeight:    m.height - chromeRows,
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		renderStatusBar(state, m.status, m.width),
		canvas,
		renderHelpBar(m.width),
	)
}

func frameLabel(state *models.WindowState) string {
	if state.Closed {
		return "closed"
	}
	return fmt.Sprintf("%s  %s x %s at %s, %s", state.FormatFrame(),
		state.Geometry.Width, state.Geometry.Height, state.Geometry.Left, state.Geometry.Top)
}
