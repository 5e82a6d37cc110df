package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/handy/internal/config"
	"github.com/sant0-9/handy/internal/history"
)

type view int

const (
	viewWelcome view = iota
	viewChat
	viewDetail
	viewHistory
	viewHelp
	viewSettings
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp() *App {
	s := newState()

	cfg, _ := config.Load()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s.config = cfg

	if cfg.HistoryEnabled {
		if path, err := config.HistoryPath(); err == nil {
			s.log, s.historyErr = history.Open(path, cfg.HistoryLimit)
		}
	}

	s.input.Focus()

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	// The text input only receives keys on views that accept commands
	if a.view == viewWelcome || a.view == viewChat {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view != viewWelcome && a.view != viewChat {
			a.view = a.backView()
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Enter):
		if a.view == viewWelcome || a.view == viewChat {
			return a.handleInput()
		}
	}

	switch a.view {
	case viewChat:
		return a.handleChatKey(msg)
	case viewDetail:
		return a.handleDetailKey(msg)
	case viewHistory:
		return a.handleHistoryKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	}

	return nil
}

// backView is where Esc lands from a subview.
func (a *App) backView() view {
	if len(a.state.exchanges) > 0 {
		return viewChat
	}
	return viewWelcome
}

func (a *App) handleChatKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		a.state.scrollOffset++
	case key.Matches(msg, keys.Down):
		a.state.scrollOffset--
		if a.state.scrollOffset < 0 {
			a.state.scrollOffset = 0
		}
	case key.Matches(msg, keys.Tab):
		if len(a.state.exchanges) > 0 {
			a.state.detailIndex = len(a.state.exchanges) - 1
			a.view = viewDetail
		}
	}
	return nil
}

func (a *App) handleDetailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if a.state.detailIndex > 0 {
			a.state.detailIndex--
		}
	case key.Matches(msg, keys.Down):
		if a.state.detailIndex < len(a.state.exchanges)-1 {
			a.state.detailIndex++
		}
	}
	return nil
}

func (a *App) handleHistoryKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "c" && a.state.log != nil {
		a.state.historyErr = a.state.log.Clear()
	}
	return nil
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	cfg := a.state.config
	switch msg.String() {
	case "h":
		cfg.HistoryEnabled = !cfg.HistoryEnabled
		if cfg.HistoryEnabled && a.state.log == nil {
			if path, err := config.HistoryPath(); err == nil {
				a.state.log, a.state.historyErr = history.Open(path, cfg.HistoryLimit)
			}
		}
	case "c":
		cfg.ShowConfidence = !cfg.ShowConfidence
	case "s":
		cfg.CompactSteps = !cfg.CompactSteps
	default:
		return nil
	}
	// Persist each toggle; a failed save just leaves the defaults on
	// next start.
	_ = cfg.Save()
	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	if strings.HasPrefix(input, "/") {
		return a.handleSlashCommand(strings.ToLower(input))
	}

	a.classify(input)
	a.state.input.Reset()
	return nil
}

func (a *App) handleSlashCommand(cmd string) tea.Cmd {
	a.state.input.Reset()

	switch cmd {
	case "/help", "/h":
		a.view = viewHelp
	case "/settings", "/s":
		a.view = viewSettings
	case "/history":
		a.view = viewHistory
	case "/samples":
		a.view = viewWelcome
	case "/clear":
		a.state.exchanges = nil
		a.state.scrollOffset = 0
		a.view = viewWelcome
	case "/quit", "/q":
		a.quitting = true
		return tea.Quit
	}
	return nil
}

// classify runs the utterance through the classifier, appends the
// exchange to the transcript, and records it in the command log.
// Classification is pure and instantaneous, so no async command is
// needed.
func (a *App) classify(utterance string) {
	action := a.state.classifier.Classify(utterance)
	a.state.exchanges = append(a.state.exchanges, exchange{
		utterance: utterance,
		action:    action,
	})
	a.state.scrollOffset = 0
	a.view = viewChat

	if a.state.config.HistoryEnabled && a.state.log != nil {
		a.state.historyErr = a.state.log.Append(
			history.NewEntry(utterance, action, time.Now()),
		)
	}
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewChat:
		return a.renderChat()
	case viewDetail:
		return a.renderDetail()
	case viewHistory:
		return a.renderHistory()
	case viewHelp:
		return a.renderHelp()
	case viewSettings:
		return a.renderSettings()
	default:
		return a.renderWelcome()
	}
}
