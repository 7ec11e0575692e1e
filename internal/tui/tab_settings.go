package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/balaji-matta18/spendbuddy/internal/tui/components"
	"github.com/balaji-matta18/spendbuddy/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type daySavedMsg struct {
	err error
}

// saveDayCmd pushes a new month-start day and refreshes the profile.
func (a App) saveDayCmd(raw string) tea.Cmd {
	store, client := a.store, a.client
	return func() tea.Msg {
		day, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return daySavedMsg{err: fmt.Errorf("month start day must be a number 1-28")}
		}
		return daySavedMsg{err: store.UpdateMonthStartDay(context.Background(), client, day)}
	}
}

func (a App) renderSettingsTab() string {
	cw := a.contentWidth()
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent)

	sess, ok := a.store.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-18s", label)),
			valueStyle.Render(value)))
	}

	row("Username", sess.Username)
	row("Email", sess.Email)
	row("Roles", strings.Join(sess.Roles, ", "))
	if a.editingDay {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			labelStyle.Render(fmt.Sprintf("%-18s", "Month start day")),
			a.dayInput.View(),
			labelStyle.Render("enter to save, esc to cancel")))
	} else {
		row("Month start day", fmt.Sprintf("%d  %s", sess.MonthStartDay, keyStyle.Render("[m] edit")))
	}
	b.WriteString("\n")
	row("Backend", a.cfg.API.BaseURL)
	row("Theme", theme.Active.Name)
	b.WriteString("\n")
	b.WriteString(keyStyle.Render(" [L]") + labelStyle.Render(" log out"))

	return components.ContentCard("Settings", b.String(), cw)
}
