package intent

import (
	"strings"
	"unicode"
)

// Classifier converts a raw utterance into a ParsedAction by
// evaluating it against a read-only grammar. It keeps no state between
// calls and is safe for concurrent use.
type Classifier struct {
	grammar *Grammar
}

// NewClassifier creates a classifier over the given grammar. A nil
// grammar selects the built-in default table.
func NewClassifier(g *Grammar) *Classifier {
	if g == nil {
		g = Default()
	}
	return &Classifier{grammar: g}
}

// Normalize trims the utterance, lowercases it, and collapses
// whitespace runs to single spaces. Idempotent.
func Normalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}

// tokenize splits a normalized utterance into matchable words,
// dropping punctuation but keeping characters that occur inside
// times and names ("5:30pm", "wi-fi").
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ':' && r != '-'
	})
}

type matchKind int

const (
	matchPhrase matchKind = iota
	matchKeyword
)

// match records how one grammar entry matched the utterance.
// extracted holds only slot values captured from the text; implied
// values are merged in later, at materialization.
type match struct {
	entry     *compiledEntry
	kind      matchKind
	literals  int
	extracted map[string]string
	implied   map[string]string
}

// specificity ranks matches of equal priority: matched literal tokens
// plus one per slot filled from the utterance.
func (m *match) specificity() int {
	return m.literals + len(m.extracted)
}

// Classify turns raw text into a ParsedAction. It is total: any
// input, including empty or nonsense text, produces a well-formed
// result, degrading to the unknown fallback rather than failing.
func (c *Classifier) Classify(raw string) ParsedAction {
	words := tokenize(Normalize(raw))

	best := c.bestMatch(words)
	if best == nil {
		return c.fallback()
	}

	slots := make(map[string]string, len(best.extracted)+len(best.implied))
	for k, v := range best.implied {
		slots[k] = v
	}
	for k, v := range best.extracted {
		slots[k] = v
	}

	e := best.entry
	steps := make([]string, len(e.Steps))
	for i, s := range e.Steps {
		steps[i] = materialize(s, slots, false)
	}

	return ParsedAction{
		Intent:     e.Intent,
		Summary:    materialize(e.Summary, slots, true),
		Steps:      steps,
		Confidence: confidenceFor(best),
	}
}

// bestMatch evaluates every entry and picks the winner: highest
// priority, then highest specificity, then lexically smallest intent
// name. Entries are scanned in table order so equal candidates
// resolve the same way on every call.
func (c *Classifier) bestMatch(words []string) *match {
	var best *match
	for i := range c.grammar.entries {
		e := &c.grammar.entries[i]
		m := matchEntry(e, words)
		if m == nil {
			continue
		}
		if best == nil || better(m, best) {
			best = m
		}
	}
	return best
}

func better(a, b *match) bool {
	if a.entry.Priority != b.entry.Priority {
		return a.entry.Priority > b.entry.Priority
	}
	if a.specificity() != b.specificity() {
		return a.specificity() > b.specificity()
	}
	return a.entry.Intent < b.entry.Intent
}

// matchEntry returns the strongest match the entry produces for the
// utterance, preferring phrase matches over bare keywords.
func matchEntry(e *compiledEntry, words []string) *match {
	var best *match
	for i := range e.phrases {
		p := &e.phrases[i]
		slots, ok := matchPattern(p, words)
		if !ok {
			continue
		}
		m := &match{
			entry:     e,
			kind:      matchPhrase,
			literals:  p.literals,
			extracted: slots,
			implied:   p.implies,
		}
		if best == nil || better(m, best) {
			best = m
		}
	}
	if best != nil {
		return best
	}

	for _, kw := range e.Keywords {
		for _, w := range words {
			if w == kw {
				return &match{entry: e, kind: matchKeyword, literals: 1}
			}
		}
	}
	return nil
}

// matchPattern tries the pattern at every start offset. Literal
// tokens must equal the word at the cursor, constrained slots must
// find one of their vocabulary words, and open slots absorb words up
// to the next token's first anchor (or the end of input when the slot
// is last). A matched open slot always captures at least one word.
func matchPattern(p *compiledPattern, words []string) (map[string]string, bool) {
	for start := 0; start < len(words); start++ {
		if slots, ok := matchPatternAt(p, words, start); ok {
			return slots, true
		}
	}
	return nil, false
}

func matchPatternAt(p *compiledPattern, words []string, start int) (map[string]string, bool) {
	slots := make(map[string]string)
	i := start

	for k, tok := range p.tokens {
		if i >= len(words) {
			return nil, false
		}
		switch {
		case tok.literal != "":
			if words[i] != tok.literal {
				return nil, false
			}
			i++

		case len(tok.vocab) > 0:
			if !wordIn(words[i], tok.vocab) {
				return nil, false
			}
			slots[tok.slot] = words[i]
			i++

		default:
			if k == len(p.tokens)-1 {
				slots[tok.slot] = strings.Join(words[i:], " ")
				i = len(words)
				continue
			}
			next := p.tokens[k+1]
			j := i + 1
			for j < len(words) && !anchors(next, words[j]) {
				j++
			}
			if j == len(words) {
				return nil, false
			}
			slots[tok.slot] = strings.Join(words[i:j], " ")
			i = j
		}
	}
	return slots, true
}

// anchors reports whether the word can begin the given token, used to
// terminate an open slot.
func anchors(t token, w string) bool {
	if t.literal != "" {
		return w == t.literal
	}
	return wordIn(w, t.vocab)
}

func wordIn(w string, vocab []string) bool {
	for _, v := range vocab {
		if w == v {
			return true
		}
	}
	return false
}

func confidenceFor(m *match) float64 {
	switch {
	case m.kind == matchKeyword:
		return ConfidenceKeyword
	case len(m.extracted) > 0:
		return ConfidenceHigh
	default:
		return ConfidencePhrase
	}
}

// fallback materializes the unknown entry. The grammar guarantees it
// exists (validated at construction).
func (c *Classifier) fallback() ParsedAction {
	for i := range c.grammar.entries {
		e := &c.grammar.entries[i]
		if e.Intent != IntentUnknown {
			continue
		}
		steps := make([]string, len(e.Steps))
		copy(steps, e.Steps)
		return ParsedAction{
			Intent:     IntentUnknown,
			Summary:    e.Summary,
			Steps:      steps,
			Confidence: ConfidenceUnknown,
		}
	}
	// Unreachable for a validated grammar.
	return ParsedAction{
		Intent:     IntentUnknown,
		Summary:    "Sorry, I didn't catch that",
		Steps:      []string{"Ask the user to rephrase the command"},
		Confidence: ConfidenceUnknown,
	}
}

// materialize substitutes slot values into a template. Slots the
// match did not fill get a generic placeholder instead of failing.
// Summaries title-case the substituted values ("call mom" -> "Call Mom").
func materialize(template string, slots map[string]string, isSummary bool) string {
	out := template
	for {
		open := strings.Index(out, "{")
		if open < 0 {
			return out
		}
		end := strings.Index(out[open:], "}")
		if end < 0 {
			return out
		}
		end += open

		name := out[open+1 : end]
		value, ok := slots[name]
		if !ok {
			value = placeholderFor(name)
		} else if isSummary {
			value = titleCase(value)
		}
		out = out[:open] + value + out[end+1:]
	}
}

// titleCase capitalizes the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
