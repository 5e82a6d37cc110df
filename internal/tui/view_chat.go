package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderChat() string {
	boxWidth := min(70, a.width-4)
	leftPad := (a.width - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	// Fixed heights
	headerHeight := 3 // Title + blank line
	inputHeight := 4  // Input box + status bar

	// Available height for the transcript
	availableHeight := a.height - headerHeight - inputHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	// === BUILD HEADER ===
	var header strings.Builder
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Commands")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	header.WriteString("\n\n")

	// === BUILD ALL TRANSCRIPT LINES ===
	var lines []string
	for _, ex := range a.state.exchanges {
		lines = append(lines, a.renderExchange(ex, indent, boxWidth)...)
		lines = append(lines, "") // Blank line between exchanges
	}

	// === APPLY SCROLL ===
	totalLines := len(lines)
	maxScroll := totalLines - availableHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.state.scrollOffset > maxScroll {
		a.state.scrollOffset = maxScroll
	}
	if a.state.scrollOffset < 0 {
		a.state.scrollOffset = 0
	}

	// Scroll from the bottom
	endIdx := totalLines - a.state.scrollOffset
	startIdx := endIdx - availableHeight
	if startIdx < 0 {
		startIdx = 0
	}
	if endIdx > totalLines {
		endIdx = totalLines
	}

	var visible []string
	if startIdx < endIdx && len(lines) > 0 {
		visible = lines[startIdx:endIdx]
	}

	// === BUILD INPUT/STATUS ===
	var footer strings.Builder

	a.state.input.Placeholder = "Next command..."
	inputBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(colorMuted).
		Render(a.state.input.View())
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	footer.WriteString("\n")

	var statusParts []string
	if a.state.scrollOffset > 0 {
		statusParts = append(statusParts, fmt.Sprintf("[scroll: %d]", a.state.scrollOffset))
	}
	if a.state.historyErr != nil {
		statusParts = append(statusParts, lipgloss.NewStyle().
			Foreground(colorError).
			Render("history: "+truncate(a.state.historyErr.Error(), 40)))
	}
	statusParts = append(statusParts, "[Tab] Detail  [Up/Down] Scroll  [Esc] Quit")
	status := styleStatusBar.Render(strings.Join(statusParts, "  "))
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	// === COMBINE WITH FIXED LAYOUT ===
	var transcript strings.Builder
	for i, line := range visible {
		transcript.WriteString(line)
		if i < len(visible)-1 {
			transcript.WriteString("\n")
		}
	}

	// Pad the transcript to fill the available height
	padding := availableHeight - len(visible)
	if padding > 0 {
		if len(visible) > 0 {
			transcript.WriteString("\n")
		}
		transcript.WriteString(strings.Repeat("\n", padding-1))
	}

	return header.String() + transcript.String() + "\n" + footer.String()
}

// renderExchange formats one utterance and its interpretation as
// transcript lines.
func (a *App) renderExchange(ex exchange, indent string, boxWidth int) []string {
	var lines []string

	// The utterance, prompt-style
	for j, line := range strings.Split(wrapText(ex.utterance, boxWidth-4), "\n") {
		prefix := "> "
		if j > 0 {
			prefix = "  "
		}
		styled := lipgloss.NewStyle().
			Foreground(colorSecondary).
			Render(prefix + line)
		lines = append(lines, indent+styled)
	}

	// Summary with intent tag and optional confidence
	summary := lipgloss.NewStyle().
		Foreground(colorWhite).
		Render("  " + ex.action.Summary)
	tag := styleSubtitle.Render(fmt.Sprintf("  [%s]", ex.action.Intent))
	if a.state.config.ShowConfidence {
		tag += "  " + confidenceLabel(ex.action.Confidence)
	}
	lines = append(lines, indent+summary+tag)

	// Steps
	if a.state.config.CompactSteps {
		steps := styleSubtitle.Render("  " + truncate(strings.Join(ex.action.Steps, " -> "), boxWidth-4))
		lines = append(lines, indent+steps)
	} else {
		for i, step := range ex.action.Steps {
			styled := styleSubtitle.Render(fmt.Sprintf("  %d. %s", i+1, step))
			lines = append(lines, indent+styled)
		}
	}

	return lines
}

// wrapText wraps text to fit within maxWidth, preserving words
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}
	if len(text) <= maxWidth {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > maxWidth {
				result.WriteString("\n")
				lineLen = 0
			} else {
				result.WriteString(" ")
				lineLen++
			}
		}
		result.WriteString(word)
		lineLen += len(word)
	}

	return result.String()
}
