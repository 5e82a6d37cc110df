package intent

import (
	"fmt"
	"strings"
)

// Pattern is one phrase template belonging to a grammar entry.
// Templates are space-separated tokens; a token wrapped in braces is a
// slot. "{contact}" captures free text, "{state:on|off}" only accepts
// one of the listed words. Implies supplies slot values that follow
// from the phrasing itself (e.g. "enable wifi" implies state=on).
type Pattern struct {
	Template string
	Implies  map[string]string
}

// GrammarEntry associates an intent with its trigger patterns and the
// templates used to materialize the result. Summary and Steps may
// reference slots with {name}; unresolved slots are replaced with a
// generic placeholder at classification time.
type GrammarEntry struct {
	Intent   Intent
	Patterns []Pattern
	Keywords []string
	Priority int
	Summary  string
	Steps    []string
}

// Grammar is the compiled, read-only rule table the classifier
// evaluates utterances against. Construct once, share freely.
type Grammar struct {
	entries []compiledEntry
}

type compiledEntry struct {
	GrammarEntry
	phrases []compiledPattern
}

type compiledPattern struct {
	tokens   []token
	literals int
	implies  map[string]string
}

// token is either a literal word (literal != "") or a slot. A slot
// with a non-empty vocab only accepts the listed words.
type token struct {
	literal string
	slot    string
	vocab   []string
}

// NewGrammar compiles and validates a rule table. The table must
// contain a fallback entry for IntentUnknown and at least one entry
// for every other intent in the enumeration; a table that violates
// this is a startup configuration defect, not a per-call condition.
func NewGrammar(entries []GrammarEntry) (*Grammar, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("grammar: empty rule table")
	}

	known := make(map[Intent]bool)
	for _, it := range AllIntents() {
		known[it] = true
	}

	covered := make(map[Intent]bool)
	compiled := make([]compiledEntry, 0, len(entries))

	for _, e := range entries {
		if !known[e.Intent] {
			return nil, fmt.Errorf("grammar: entry for unlisted intent %q", e.Intent)
		}
		if e.Summary == "" {
			return nil, fmt.Errorf("grammar: %s entry has no summary template", e.Intent)
		}
		if len(e.Steps) == 0 {
			return nil, fmt.Errorf("grammar: %s entry has no steps template", e.Intent)
		}

		ce := compiledEntry{GrammarEntry: e}
		for _, p := range e.Patterns {
			cp, err := compilePattern(p)
			if err != nil {
				return nil, fmt.Errorf("grammar: %s: %w", e.Intent, err)
			}
			ce.phrases = append(ce.phrases, cp)
		}
		compiled = append(compiled, ce)
		covered[e.Intent] = true
	}

	if !covered[IntentUnknown] {
		return nil, fmt.Errorf("grammar: missing the %s fallback entry", IntentUnknown)
	}
	for _, it := range AllIntents() {
		if !covered[it] {
			return nil, fmt.Errorf("grammar: no entry for intent %q", it)
		}
	}

	return &Grammar{entries: compiled}, nil
}

func compilePattern(p Pattern) (compiledPattern, error) {
	fields := strings.Fields(strings.ToLower(p.Template))
	if len(fields) == 0 {
		return compiledPattern{}, fmt.Errorf("empty pattern template")
	}

	cp := compiledPattern{implies: p.Implies}
	for i, f := range fields {
		if !strings.HasPrefix(f, "{") {
			cp.tokens = append(cp.tokens, token{literal: f})
			cp.literals++
			continue
		}
		if !strings.HasSuffix(f, "}") {
			return compiledPattern{}, fmt.Errorf("malformed slot %q in %q", f, p.Template)
		}
		body := f[1 : len(f)-1]
		name, vocab, _ := strings.Cut(body, ":")
		if name == "" {
			return compiledPattern{}, fmt.Errorf("unnamed slot in %q", p.Template)
		}
		t := token{slot: name}
		if vocab != "" {
			t.vocab = strings.Split(vocab, "|")
		}
		if vocab == "" && i < len(fields)-1 && strings.HasPrefix(fields[i+1], "{") {
			next := strings.Trim(fields[i+1], "{}")
			if !strings.Contains(next, ":") {
				return compiledPattern{}, fmt.Errorf("two adjacent open slots in %q", p.Template)
			}
		}
		cp.tokens = append(cp.tokens, t)
	}
	return cp, nil
}

// slotPlaceholders fills summary/steps references whose slot was not
// extracted, so materialization never fails on a missing value.
var slotPlaceholders = map[string]string{
	"contact":     "the requested contact",
	"app":         "the requested app",
	"setting":     "that setting",
	"state":       "on or off",
	"time":        "the requested time",
	"task":        "the requested task",
	"destination": "the requested destination",
	"media":       "the requested media",
	"level":       "the requested level",
	"direction":   "up or down",
}

func placeholderFor(slot string) string {
	if p, ok := slotPlaceholders[slot]; ok {
		return p
	}
	return "the requested " + slot
}

// DefaultEntries is the built-in rule table covering the nine-intent
// enumeration. Priorities: constrained templates rank above generic
// verb templates, and the catch-all "play {media}" ranks lowest so it
// never shadows a more specific phrasing.
func DefaultEntries() []GrammarEntry {
	return []GrammarEntry{
		{
			Intent: IntentCall,
			Patterns: []Pattern{
				{Template: "call {contact}"},
				{Template: "dial {contact}"},
				{Template: "phone {contact}"},
				{Template: "make a call to {contact}"},
			},
			Keywords: []string{"call", "dial"},
			Priority: 2,
			Summary:  "Call {contact}",
			Steps: []string{
				"Open the phone app",
				"Look up {contact} in contacts",
				"Start the call to {contact}",
			},
		},
		{
			Intent: IntentMessage,
			Patterns: []Pattern{
				{Template: "send a message to {contact}"},
				{Template: "send a text to {contact}"},
				{Template: "text {contact}"},
				{Template: "message {contact}"},
			},
			Keywords: []string{"text", "message", "sms"},
			Priority: 2,
			Summary:  "Send a message to {contact}",
			Steps: []string{
				"Open the messaging app",
				"Open the conversation with {contact}",
				"Compose the message",
				"Send the message",
			},
		},
		{
			Intent: IntentOpenApp,
			Patterns: []Pattern{
				{Template: "open {app}"},
				{Template: "launch {app}"},
				{Template: "switch to {app}"},
			},
			Keywords: []string{"open", "launch"},
			Priority: 2,
			Summary:  "Open {app}",
			Steps: []string{
				"Go to the home screen",
				"Locate {app}",
				"Launch {app}",
			},
		},
		{
			Intent: IntentToggleSetting,
			Patterns: []Pattern{
				{Template: "turn {state:on|off} {setting}"},
				{Template: "switch {state:on|off} {setting}"},
				{Template: "turn {setting} {state:on|off}"},
				{Template: "enable {setting}", Implies: map[string]string{"state": "on"}},
				{Template: "disable {setting}", Implies: map[string]string{"state": "off"}},
			},
			Keywords: []string{"toggle"},
			Priority: 3,
			Summary:  "Turn {setting} {state}",
			Steps: []string{
				"Open the settings app",
				"Find the {setting} switch",
				"Set {setting} to {state}",
			},
		},
		{
			Intent: IntentSetReminder,
			Patterns: []Pattern{
				{Template: "set a reminder for {time}"},
				{Template: "set an alarm for {time}"},
				{Template: "remind me at {time}"},
			},
			Keywords: []string{"reminder", "remind"},
			Priority: 3,
			Summary:  "Set a reminder for {time}",
			Steps: []string{
				"Open the clock app",
				"Create a new reminder",
				"Set the reminder time to {time}",
				"Save the reminder",
			},
		},
		{
			Intent: IntentSetReminder,
			Patterns: []Pattern{
				{Template: "remind me to {task}"},
				{Template: "set a reminder to {task}"},
			},
			Priority: 3,
			Summary:  "Set a reminder to {task}",
			Steps: []string{
				"Open the clock app",
				"Create a new reminder",
				"Set the reminder note to {task}",
				"Save the reminder",
			},
		},
		{
			Intent: IntentNavigate,
			Patterns: []Pattern{
				{Template: "navigate to {destination}"},
				{Template: "directions to {destination}"},
				{Template: "get directions to {destination}"},
				{Template: "take me to {destination}"},
			},
			Keywords: []string{"navigate", "directions"},
			Priority: 2,
			Summary:  "Navigate to {destination}",
			Steps: []string{
				"Open the maps app",
				"Search for {destination}",
				"Start turn-by-turn navigation",
			},
		},
		{
			Intent: IntentPlayMedia,
			Patterns: []Pattern{
				{Template: "play {media}"},
			},
			Keywords: []string{"play"},
			Priority: 1,
			Summary:  "Play {media}",
			Steps: []string{
				"Open the media player",
				"Search for {media}",
				"Start playback",
			},
		},
		{
			Intent: IntentVolume,
			Patterns: []Pattern{
				{Template: "set the volume to {level}"},
				{Template: "set volume to {level}"},
				{Template: "volume to {level}"},
			},
			Priority: 2,
			Summary:  "Set the volume to {level}",
			Steps: []string{
				"Open sound settings",
				"Set the media volume to {level}",
			},
		},
		{
			Intent: IntentVolume,
			Patterns: []Pattern{
				{Template: "volume up", Implies: map[string]string{"direction": "up"}},
				{Template: "volume down", Implies: map[string]string{"direction": "down"}},
				{Template: "turn up the volume", Implies: map[string]string{"direction": "up"}},
				{Template: "turn down the volume", Implies: map[string]string{"direction": "down"}},
			},
			Keywords: []string{"volume", "louder", "quieter", "mute"},
			Priority: 2,
			Summary:  "Turn the volume {direction}",
			Steps: []string{
				"Open sound settings",
				"Adjust the media volume {direction}",
			},
		},
		{
			Intent:   IntentUnknown,
			Priority: 0,
			Summary:  "Sorry, I didn't catch that",
			Steps: []string{
				"Ask the user to rephrase the command",
			},
		},
	}
}

// Default returns the grammar compiled from DefaultEntries. The
// built-in table is validated at construction; a defect in it is a
// programming error, so this panics rather than returning one.
func Default() *Grammar {
	g, err := NewGrammar(DefaultEntries())
	if err != nil {
		panic(err)
	}
	return g
}
