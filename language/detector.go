// Package language decides which of the assistant's supported languages a
// user turn is written in. Detection is local and deterministic: script
// ranges first, romanized keyword hints second, statistical trigrams last.
package language

import (
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"

	"swasthya/domain"
)

// Romanized hints carried over from field usage: speakers frequently type
// Hindi or Telugu in Latin script on WhatsApp.
var (
	hindiHints  = []string{"kya", "hai", "mera", "yeh", "aur", "mein", "hoon", "kaisa", "kaise"}
	teluguHints = []string{"enti", "ela", "nenu", "miru", "emiti", "enduku", "ekkada"}
)

// Detect returns the reply language for text, defaulting to English.
func Detect(text string) domain.Language {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.English
	}

	for _, r := range trimmed {
		if unicode.Is(unicode.Devanagari, r) {
			return domain.Hindi
		}
		if unicode.Is(unicode.Telugu, r) {
			return domain.Telugu
		}
	}

	words := strings.Fields(strings.ToLower(trimmed))
	if containsAny(words, hindiHints) {
		return domain.Hindi
	}
	if containsAny(words, teluguHints) {
		return domain.Telugu
	}

	switch whatlanggo.Detect(trimmed).Lang.Iso6391() {
	case "hi":
		return domain.Hindi
	case "te":
		return domain.Telugu
	default:
		return domain.English
	}
}

func containsAny(words, hints []string) bool {
	for _, w := range words {
		for _, h := range hints {
			if w == h {
				return true
			}
		}
	}
	return false
}
