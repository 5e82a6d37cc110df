package intent

import "testing"

// Every catalog entry must keep classifying to a real intent as the
// grammar evolves; this is the standing regression check for the
// suggestions shown on the welcome screen.
func TestSamplesClassifyToKnownIntents(t *testing.T) {
	c := NewClassifier(nil)

	for _, s := range Samples() {
		got := c.Classify(s)
		if got.Intent == IntentUnknown {
			t.Errorf("sample %q classified as unknown", s)
		}
		if got.Confidence <= ConfidenceKeyword {
			t.Errorf("sample %q scored %v, want a phrase-tier confidence", s, got.Confidence)
		}
	}
}

func TestSamplesReturnsCopy(t *testing.T) {
	a := Samples()
	a[0] = "mutated"
	b := Samples()
	if b[0] == "mutated" {
		t.Error("Samples() exposes internal slice")
	}
}
