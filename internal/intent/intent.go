package intent

// Intent is the closed set of phone action categories an utterance
// can be classified into.
type Intent string

const (
	IntentCall          Intent = "call"
	IntentMessage       Intent = "message"
	IntentOpenApp       Intent = "open-app"
	IntentToggleSetting Intent = "toggle-setting"
	IntentSetReminder   Intent = "set-reminder"
	IntentNavigate      Intent = "navigate"
	IntentPlayMedia     Intent = "play-media"
	IntentVolume        Intent = "volume"
	IntentUnknown       Intent = "unknown"
)

// AllIntents returns every intent in the enumeration, in declaration order.
func AllIntents() []Intent {
	return []Intent{
		IntentCall,
		IntentMessage,
		IntentOpenApp,
		IntentToggleSetting,
		IntentSetReminder,
		IntentNavigate,
		IntentPlayMedia,
		IntentVolume,
		IntentUnknown,
	}
}

// ParsedAction is the structured interpretation of one utterance.
// Values are created fresh per classification and never mutated after.
type ParsedAction struct {
	Intent     Intent
	Summary    string
	Steps      []string
	Confidence float64
}

// Confidence tiers. Each tier is a fixed constant so that repeated
// classification of the same input always scores identically.
const (
	// ConfidenceHigh: a phrase template matched and a slot value was
	// extracted from the utterance itself.
	ConfidenceHigh = 0.9
	// ConfidencePhrase: a multi-word phrase template matched but no
	// slot value came from the utterance.
	ConfidencePhrase = 0.75
	// ConfidenceKeyword: only a bare trigger keyword matched.
	ConfidenceKeyword = 0.55
	// ConfidenceUnknown: the fallback score.
	ConfidenceUnknown = 0.1
)
