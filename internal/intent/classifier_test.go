package intent

import (
	"reflect"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name           string
		utterance      string
		wantIntent     Intent
		wantSummary    string
		wantConfidence float64
	}{
		{
			name:           "call with contact",
			utterance:      "call mom",
			wantIntent:     IntentCall,
			wantSummary:    "Call Mom",
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "bare call keyword",
			utterance:      "call",
			wantIntent:     IntentCall,
			wantSummary:    "Call the requested contact",
			wantConfidence: ConfidenceKeyword,
		},
		{
			name:           "toggle on",
			utterance:      "turn on wifi",
			wantIntent:     IntentToggleSetting,
			wantSummary:    "Turn Wifi On",
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "toggle trailing state",
			utterance:      "turn bluetooth off",
			wantIntent:     IntentToggleSetting,
			wantSummary:    "Turn Bluetooth Off",
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "reminder with time",
			utterance:      "set a reminder for 5pm",
			wantIntent:     IntentSetReminder,
			wantSummary:    "Set a reminder for 5pm",
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "message with contact",
			utterance:      "text alex",
			wantIntent:     IntentMessage,
			wantSummary:    "Send a message to Alex",
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "open app",
			utterance:      "open spotify",
			wantIntent:     IntentOpenApp,
			wantSummary:    "Open Spotify",
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "navigate with destination",
			utterance:      "take me to the airport",
			wantIntent:     IntentNavigate,
			wantSummary:    "Navigate to The Airport",
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "play media",
			utterance:      "play some jazz",
			wantIntent:     IntentPlayMedia,
			wantSummary:    "Play Some Jazz",
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "volume phrase without slot",
			utterance:      "turn up the volume",
			wantIntent:     IntentVolume,
			wantConfidence: ConfidencePhrase,
		},
		{
			name:           "volume with level",
			utterance:      "set the volume to 50",
			wantIntent:     IntentVolume,
			wantSummary:    "Set the volume to 50",
			wantConfidence: ConfidenceHigh,
		},
		{
			name:           "gibberish falls back",
			utterance:      "asdkj qweoiu",
			wantIntent:     IntentUnknown,
			wantConfidence: ConfidenceUnknown,
		},
		{
			name:           "empty input falls back",
			utterance:      "",
			wantIntent:     IntentUnknown,
			wantConfidence: ConfidenceUnknown,
		},
		{
			name:           "whitespace only falls back",
			utterance:      "   \t  ",
			wantIntent:     IntentUnknown,
			wantConfidence: ConfidenceUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.utterance)
			if got.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if tt.wantSummary != "" && got.Summary != tt.wantSummary {
				t.Errorf("Summary = %q, want %q", got.Summary, tt.wantSummary)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if len(got.Steps) == 0 {
				t.Error("Steps is empty")
			}
		})
	}
}

func TestClassifyReminderTimeStep(t *testing.T) {
	c := NewClassifier(nil)

	got := c.Classify("set a reminder for 5pm")
	found := false
	for _, s := range got.Steps {
		if strings.Contains(s, "5pm") {
			found = true
		}
	}
	if !found {
		t.Errorf("no time-bearing step in %v", got.Steps)
	}
}

func TestClassifyCaseAndWhitespaceInsensitive(t *testing.T) {
	c := NewClassifier(nil)

	a := c.Classify("CALL   Mom")
	b := c.Classify("call mom")
	if a.Intent != b.Intent {
		t.Errorf("intents differ: %q vs %q", a.Intent, b.Intent)
	}
	if a.Summary != b.Summary {
		t.Errorf("summaries differ: %q vs %q", a.Summary, b.Summary)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(nil)

	inputs := []string{"call mom", "turn on wifi", "volume up", "nonsense here", ""}
	for _, in := range inputs {
		first := c.Classify(in)
		second := c.Classify(in)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Classify(%q) not deterministic: %+v vs %+v", in, first, second)
		}
	}
}

func TestClassifyTotality(t *testing.T) {
	c := NewClassifier(nil)

	known := make(map[Intent]bool)
	for _, it := range AllIntents() {
		known[it] = true
	}

	inputs := []string{
		"", " ", "\n\t", "call", "play", "volume",
		"qwerty uiop", "the quick brown fox", "12345", "?!.",
		"turn", "set", "remind", "open the pod bay doors",
	}
	for _, in := range inputs {
		got := c.Classify(in)
		if !known[got.Intent] {
			t.Errorf("Classify(%q).Intent = %q, not in enumeration", in, got.Intent)
		}
		if len(got.Steps) == 0 {
			t.Errorf("Classify(%q) returned no steps", in)
		}
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Errorf("Classify(%q).Confidence = %v, out of range", in, got.Confidence)
		}
	}
}

func TestClassifyConfidenceOrdering(t *testing.T) {
	c := NewClassifier(nil)

	slotted := c.Classify("call mom").Confidence
	keyword := c.Classify("call").Confidence
	fallback := c.Classify("asdkj qweoiu").Confidence

	if slotted < keyword {
		t.Errorf("slot-filled phrase (%v) scored below bare keyword (%v)", slotted, keyword)
	}
	if keyword < fallback {
		t.Errorf("bare keyword (%v) scored below fallback (%v)", keyword, fallback)
	}
}

func TestClassifyPriorityBeatsGenericMatch(t *testing.T) {
	c := NewClassifier(nil)

	// "remind me to call mom" matches both the reminder phrase and the
	// call phrase; the reminder entry carries the higher priority.
	got := c.Classify("remind me to call mom")
	if got.Intent != IntentSetReminder {
		t.Errorf("Intent = %q, want %q", got.Intent, IntentSetReminder)
	}
}

func TestClassifyLexicalTieBreak(t *testing.T) {
	c := NewClassifier(nil)

	// Both the call and open-app phrases match with equal priority and
	// specificity; "call" sorts first.
	got := c.Classify("open the phone and call mom")
	if got.Intent != IntentCall {
		t.Errorf("Intent = %q, want %q", got.Intent, IntentCall)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"  CALL   Mom ", "turn\ton wifi", "", "  ", "Play Some JAZZ"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize(%q) not idempotent: %q vs %q", in, once, twice)
		}
	}
}
