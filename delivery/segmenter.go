// Package delivery implements the outbound message pipeline: splitting long
// replies into channel-sized chunks, accounting sends against the daily
// quota, and sequencing the actual channel calls.
package delivery

import (
	"strings"
	"unicode/utf8"
)

// Split cuts text into ordered chunks of at most maxLength bytes each.
// It prefers sentence boundaries (". "), falls back to word boundaries, and
// finally to hard cuts for tokens longer than maxLength. Chunks are never
// empty; an empty input yields no chunks at all. Concatenating the chunks
// (modulo the whitespace swallowed at chunk seams) reproduces the input in
// order.
func Split(text string, maxLength int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= maxLength {
		return []string{text}
	}
	if strings.TrimSpace(text) == "" {
		// Nothing to anchor a boundary on, cut blindly.
		return hardCut(text, maxLength)
	}

	var chunks []string
	var buf string

	flush := func() {
		if s := strings.TrimSpace(buf); s != "" {
			chunks = append(chunks, s)
		}
		buf = ""
	}

	sentences := strings.Split(text, ". ")
	for i, sentence := range sentences {
		// The split swallowed the terminator of every fragment but the last.
		if i < len(sentences)-1 && !strings.HasSuffix(sentence, ".") {
			sentence += "."
		}
		if sentence == "" {
			continue
		}
		if joinedLen(buf, sentence) <= maxLength {
			buf = join(buf, sentence)
			continue
		}
		flush()
		if len(sentence) <= maxLength {
			buf = sentence
			continue
		}
		// A single sentence over budget: pack word by word.
		for _, word := range strings.Split(sentence, " ") {
			if word == "" {
				continue
			}
			if joinedLen(buf, word) <= maxLength {
				buf = join(buf, word)
				continue
			}
			flush()
			for len(word) > maxLength {
				cut := runeSafeCut(word, maxLength)
				chunks = append(chunks, word[:cut])
				word = word[cut:]
			}
			buf = word
		}
	}
	flush()
	return chunks
}

func join(buf, next string) string {
	if buf == "" {
		return next
	}
	return buf + " " + next
}

func joinedLen(buf, next string) int {
	if buf == "" {
		return len(next)
	}
	return len(buf) + 1 + len(next)
}

func hardCut(text string, maxLength int) []string {
	var out []string
	for len(text) > maxLength {
		cut := runeSafeCut(text, maxLength)
		out = append(out, text[:cut])
		text = text[cut:]
	}
	if text != "" {
		out = append(out, text)
	}
	return out
}

// runeSafeCut returns the largest offset <= max that does not land inside a
// UTF-8 sequence. It always makes progress of at least one rune.
func runeSafeCut(s string, max int) int {
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		_, size := utf8.DecodeRuneInString(s)
		return size
	}
	return cut
}
