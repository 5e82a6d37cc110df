package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDetail shows one exchange in full: summary, intent, every
// step in execution order, and the confidence tier.
func (a *App) renderDetail() string {
	if len(a.state.exchanges) == 0 {
		return a.centerVertically(styleSubtitle.Render("Nothing to show yet"))
	}
	if a.state.detailIndex >= len(a.state.exchanges) {
		a.state.detailIndex = len(a.state.exchanges) - 1
	}
	ex := a.state.exchanges[a.state.detailIndex]

	var b strings.Builder

	// Show what was asked
	asked := styleSubtitle.Render(fmt.Sprintf("> %s", ex.utterance))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n\n")

	// Action box
	var action strings.Builder
	summary := lipgloss.NewStyle().
		Foreground(colorWhite).
		Bold(true).
		Render(ex.action.Summary)
	action.WriteString(summary)
	action.WriteString("\n\n")
	action.WriteString(styleSubtitle.Render(fmt.Sprintf("Intent:     %s", ex.action.Intent)))
	action.WriteString("\n")
	action.WriteString(styleSubtitle.Render("Confidence: "))
	action.WriteString(confidenceLabel(ex.action.Confidence))
	action.WriteString("\n\n")
	action.WriteString(styleSubtitle.Render("Steps:"))
	action.WriteString("\n")
	for i, step := range ex.action.Steps {
		action.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}

	actionBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(strings.TrimRight(action.String(), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, actionBox))
	b.WriteString("\n\n")

	// Position indicator
	position := styleSubtitle.Render(
		fmt.Sprintf("%d of %d", a.state.detailIndex+1, len(a.state.exchanges)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, position))
	b.WriteString("\n\n")

	// Status bar
	status := styleStatusBar.Render("[Up/Down] Previous/Next  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
