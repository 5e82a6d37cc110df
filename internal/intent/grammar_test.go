package intent

import (
	"strings"
	"testing"
)

func TestNewGrammarValidation(t *testing.T) {
	valid := DefaultEntries()

	tests := []struct {
		name    string
		entries []GrammarEntry
		wantErr string
	}{
		{
			name:    "empty table",
			entries: nil,
			wantErr: "empty rule table",
		},
		{
			name:    "missing unknown fallback",
			entries: withoutIntent(valid, IntentUnknown),
			wantErr: "fallback",
		},
		{
			name:    "missing enumerated intent",
			entries: withoutIntent(valid, IntentVolume),
			wantErr: "no entry for intent",
		},
		{
			name: "unlisted intent",
			entries: append(DefaultEntries(), GrammarEntry{
				Intent:  Intent("teleport"),
				Summary: "Teleport",
				Steps:   []string{"step"},
			}),
			wantErr: "unlisted intent",
		},
		{
			name: "entry without steps",
			entries: append(withoutIntent(valid, IntentVolume), GrammarEntry{
				Intent:  IntentVolume,
				Summary: "Adjust the volume",
			}),
			wantErr: "no steps",
		},
		{
			name: "malformed slot",
			entries: append(DefaultEntries(), GrammarEntry{
				Intent:   IntentCall,
				Patterns: []Pattern{{Template: "ring {contact"}},
				Summary:  "Call {contact}",
				Steps:    []string{"step"},
			}),
			wantErr: "malformed slot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrammar(tt.entries)
			if err == nil {
				t.Fatal("NewGrammar() returned no error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func withoutIntent(entries []GrammarEntry, drop Intent) []GrammarEntry {
	var out []GrammarEntry
	for _, e := range entries {
		if e.Intent != drop {
			out = append(out, e)
		}
	}
	return out
}

func TestDefaultGrammarIsValid(t *testing.T) {
	if _, err := NewGrammar(DefaultEntries()); err != nil {
		t.Fatalf("built-in table failed validation: %v", err)
	}
}

func TestDefaultGrammarCoversEnumeration(t *testing.T) {
	covered := make(map[Intent]bool)
	for _, e := range DefaultEntries() {
		covered[e.Intent] = true
	}
	for _, it := range AllIntents() {
		if !covered[it] {
			t.Errorf("no grammar entry for intent %q", it)
		}
	}
}

func TestCompilePatternConstrainedSlot(t *testing.T) {
	cp, err := compilePattern(Pattern{Template: "turn {state:on|off} {setting}"})
	if err != nil {
		t.Fatalf("compilePattern() error: %v", err)
	}
	if cp.literals != 1 {
		t.Errorf("literals = %d, want 1", cp.literals)
	}
	if len(cp.tokens) != 3 {
		t.Fatalf("tokens = %d, want 3", len(cp.tokens))
	}
	if got := cp.tokens[1].vocab; len(got) != 2 || got[0] != "on" || got[1] != "off" {
		t.Errorf("vocab = %v, want [on off]", got)
	}
}

func TestCompilePatternRejectsAdjacentOpenSlots(t *testing.T) {
	_, err := compilePattern(Pattern{Template: "text {contact} {body}"})
	if err == nil {
		t.Error("expected error for two adjacent open slots")
	}
}
