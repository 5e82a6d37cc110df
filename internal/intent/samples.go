package intent

// samples is the catalog of example utterances surfaced as quick-start
// suggestions. Every entry must classify to a real intent; the package
// tests enforce that as the grammar evolves.
var samples = []string{
	"call mom",
	"send a message to alex",
	"open spotify",
	"turn on wifi",
	"set a reminder for 5pm",
	"navigate to the nearest gas station",
	"play some jazz",
	"turn up the volume",
}

// Samples returns a copy of the example-utterance catalog, in display
// order.
func Samples() []string {
	out := make([]string, len(samples))
	copy(out, samples)
	return out
}
