// Package intent routes user turns to the assistant capability that should
// answer them. Routing is keyword based: an Aho-Corasick automaton over
// normalized runes, so spacing, punctuation and case variations still match.
package intent

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Intent int

const (
	HealthAdvice Intent = iota
	OutbreakInfo
)

func (i Intent) String() string {
	if i == OutbreakInfo {
		return "outbreak_info"
	}
	return "health_advice"
}

// outbreakKeywords cover the three supported languages, including romanized
// phrasings users actually type.
var outbreakKeywords = []string{
	"outbreak",
	"outbreaks",
	"epidemic",
	"disease surveillance",
	"idsp",
	"बीमारी का प्रकोप",
	"प्रकोप",
	"महामारी",
	"వ్యాధి వ్యాప్తి",
	"వ్యాప్తి",
	"అంటువ్యాధి",
	"bimari ka prakop",
	"vyadhi vyapti",
}

// Router classifies turns into one of the assistant's intents.
type Router struct {
	matcher *goahocorasick.Machine
}

// NewRouter builds the automaton over the normalized keyword set.
func NewRouter() (*Router, error) {
	patterns := make([][]rune, len(outbreakKeywords))
	for i, kw := range outbreakKeywords {
		patterns[i] = normalizeRunes([]rune(kw))
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Router{matcher: m}, nil
}

// Route returns OutbreakInfo when the turn asks about disease outbreaks,
// HealthAdvice otherwise.
func (r *Router) Route(text string) Intent {
	normalized := normalizeRunes([]rune(text))
	if len(normalized) == 0 {
		return HealthAdvice
	}
	if spans := r.matcher.MultiPatternSearch(normalized, true); len(spans) > 0 {
		return OutbreakInfo
	}
	return HealthAdvice
}

// normalizeRunes lowercases and drops punctuation, spacing and symbols so
// patterns match regardless of formatting.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}
