package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderSettings() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	cfg := a.state.config

	configLines := []string{
		fmt.Sprintf("  History:          %s", onOff(cfg.HistoryEnabled)),
		fmt.Sprintf("  History limit:    %d entries", cfg.HistoryLimit),
		fmt.Sprintf("  Show confidence:  %s", onOff(cfg.ShowConfidence)),
		fmt.Sprintf("  Compact steps:    %s", onOff(cfg.CompactSteps)),
	}

	configBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	// Actions
	actions := []string{
		"  [h] Toggle history",
		"  [c] Toggle confidence display",
		"  [s] Toggle compact steps",
	}
	actionsBox := styleBox.Copy().
		Width(50).
		Render(strings.Join(actions, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, actionsBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
