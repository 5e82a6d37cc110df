// Package history keeps the on-disk log of classified commands. The
// classifier itself never touches this; the UI records each exchange
// after the fact.
package history

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sant0-9/handy/internal/intent"
)

// Entry pairs one utterance with the action it classified to.
type Entry struct {
	Utterance  string    `yaml:"utterance"`
	Intent     string    `yaml:"intent"`
	Summary    string    `yaml:"summary"`
	Steps      []string  `yaml:"steps"`
	Confidence float64   `yaml:"confidence"`
	At         time.Time `yaml:"at"`
}

// NewEntry builds a log entry from an utterance and its classification.
func NewEntry(utterance string, action intent.ParsedAction, at time.Time) Entry {
	steps := make([]string, len(action.Steps))
	copy(steps, action.Steps)
	return Entry{
		Utterance:  utterance,
		Intent:     string(action.Intent),
		Summary:    action.Summary,
		Steps:      steps,
		Confidence: action.Confidence,
		At:         at,
	}
}

// Log is a bounded, file-backed command log. Oldest entries are
// dropped once the limit is reached.
type Log struct {
	path    string
	limit   int
	entries []Entry
}

// Open loads the log at path, creating an empty one if the file does
// not exist yet. limit <= 0 means unbounded.
func Open(path string, limit int) (*Log, error) {
	l := &Log{path: path, limit: limit}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, &l.entries); err != nil {
		return nil, err
	}
	l.trim()
	return l, nil
}

// Append records an entry and saves the log.
func (l *Log) Append(e Entry) error {
	l.entries = append(l.entries, e)
	l.trim()
	return l.save()
}

// Entries returns the logged entries, oldest first, as a copy.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports how many entries are logged.
func (l *Log) Len() int {
	return len(l.entries)
}

// Clear drops all entries and removes the backing file.
func (l *Log) Clear() error {
	l.entries = nil
	err := os.Remove(l.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (l *Log) trim() {
	if l.limit > 0 && len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

func (l *Log) save() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(l.entries)
	if err != nil {
		return err
	}

	return os.WriteFile(l.path, data, 0600)
}
