package components

import (
	"fmt"

	"github.com/hojung1231/nestegg/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. The right side shows the
// modeled horizon, e.g. "2025-2052".
func RenderStatusBar(width int, horizon string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := ""
	if horizon != "" {
		right = fmt.Sprintf("Horizon: %s ", horizon)
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
