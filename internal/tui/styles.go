package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/floatwin/internal/models"
)

var (
	policyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Background(lipgloss.Color("236"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderStatusBar shows the policy, the frame and the last error
func renderStatusBar(state *models.WindowState, status string, width int) string {
	left := policyStyle.Render(state.Policy)
	text := " " + frameLabel(state)
	if state.Snapshot != nil {
		text += "  [snapshot]"
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, left, statusStyle.Render(text))
	if status != "" {
		bar = lipgloss.JoinHorizontal(lipgloss.Top, bar, errorStyle.Render("  "+status))
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(bar)
}

func renderHelpBar(width int) string {
	help := "drag title/edges  dbl-click: max/restore  m: max  n: min  r: restore  1-9: dock  p: policy  f: float  c: close  q: quit"
	return helpStyle.MaxWidth(width).Render(help)
}
