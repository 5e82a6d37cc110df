package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHistory() string {
	var b strings.Builder

	// Header
	title := styleLogo.Render("Command History")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	boxWidth := min(70, a.width-4)

	switch {
	case !a.state.config.HistoryEnabled:
		off := styleBox.Copy().
			Width(boxWidth).
			Foreground(colorMuted).
			Render("History is turned off.\n\nEnable it in /settings to keep a command log.")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, off))

	case a.state.log == nil || a.state.log.Len() == 0:
		empty := styleBox.Copy().
			Width(boxWidth).
			Foreground(colorMuted).
			Render("No commands logged yet.\n\nClassified commands are stored in:\n~/.config/handy/history.yaml")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, empty))

	default:
		entries := a.state.log.Entries()

		// Newest first, capped to what fits on screen
		maxRows := (a.height - 12) / 2
		if maxRows < 3 {
			maxRows = 3
		}
		if len(entries) > maxRows {
			entries = entries[len(entries)-maxRows:]
		}

		var list strings.Builder
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			list.WriteString(fmt.Sprintf("%s  %s\n",
				e.At.Format("Jan 02 15:04"),
				truncate(e.Utterance, boxWidth-20)))
			list.WriteString(styleSubtitle.Render(
				fmt.Sprintf("  [%s] %s", e.Intent, truncate(e.Summary, boxWidth-20))))
			list.WriteString("\n\n")
		}

		listBox := styleBox.Copy().
			Width(boxWidth).
			BorderForeground(colorPrimary).
			Render(strings.TrimSpace(list.String()))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	}
	b.WriteString("\n\n")

	// Status bar
	statusBar := styleStatusBar.Render("[c] Clear log  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
