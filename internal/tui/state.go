package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sant0-9/handy/internal/config"
	"github.com/sant0-9/handy/internal/history"
	"github.com/sant0-9/handy/internal/intent"
)

type state struct {
	// Config
	config *config.Config

	// Classifier over the built-in grammar, shared by every exchange
	classifier *intent.Classifier

	// Chat transcript, oldest first
	exchanges    []exchange
	scrollOffset int

	// Index of the exchange shown in the detail view
	detailIndex int

	// Command log; nil when history is disabled or failed to open
	log        *history.Log
	historyErr error

	// Input
	input textinput.Model
}

// exchange is one utterance and the action it classified to.
type exchange struct {
	utterance string
	action    intent.ParsedAction
}

func newState() *state {
	input := textinput.New()
	input.Placeholder = "Tell me what to do, or /help for commands..."
	input.CharLimit = 200
	input.Width = 60

	return &state{
		classifier: intent.NewClassifier(nil),
		input:      input,
	}
}
