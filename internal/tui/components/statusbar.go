package components

import (
	"fmt"

	"github.com/balaji-matta18/spendbuddy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar with the signed-in identity.
func RenderStatusBar(width int, username string, notice string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	if notice != "" {
		left = " " + notice
	}
	right := ""
	if username != "" {
		right = fmt.Sprintf("signed in as %s ", username)
	}

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
