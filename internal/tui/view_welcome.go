package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/handy/internal/intent"
)

const logo = `
 ██╗  ██╗ █████╗ ███╗   ██╗██████╗ ██╗   ██╗
 ██║  ██║██╔══██╗████╗  ██║██╔══██╗╚██╗ ██╔╝
 ███████║███████║██╔██╗ ██║██║  ██║ ╚████╔╝
 ██╔══██║██╔══██║██║╚██╗██║██║  ██║  ╚██╔╝
 ██║  ██║██║  ██║██║ ╚████║██████╔╝   ██║
 ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═════╝    ╚═╝
`

func (a *App) renderWelcome() string {
	// Logo
	logoRendered := styleLogo.Render(logo)

	// Subtitle
	subtitle := styleSubtitle.Render("Phone Command Assistant")

	// Sample suggestions from the catalog
	var samples strings.Builder
	samples.WriteString(styleSubtitle.Render("Try saying:"))
	samples.WriteString("\n")
	for _, s := range intent.Samples() {
		line := lipgloss.NewStyle().
			Foreground(colorSecondary).
			Render("  \"" + s + "\"")
		samples.WriteString(line)
		samples.WriteString("\n")
	}

	samplesBox := styleBox.Copy().
		Width(min(50, a.width-4)).
		Render(strings.TrimRight(samples.String(), "\n"))

	// Input box
	inputBox := styleBox.Copy().
		Width(min(64, a.width-4)).
		BorderForeground(colorPrimary).
		Render(a.state.input.View())

	// Status bar
	statusBar := styleStatusBar.Render("[Enter] Submit  [Esc] Quit  /help for commands")

	// Combine main content
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		"",
		samplesBox,
		"",
		inputBox,
	)

	// Center content on screen (leave room for status bar)
	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	// Status bar centered at bottom
	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
