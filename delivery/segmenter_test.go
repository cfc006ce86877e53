package delivery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_ShortTextIsReturnedUntouched(t *testing.T) {
	req := require.New(t)

	text := strings.Repeat("a", 1399)
	chunks := Split(text, 1400)

	req.Equal([]string{text}, chunks)
}

func TestSplit_EmptyInputYieldsNoChunks(t *testing.T) {
	req := require.New(t)

	req.Nil(Split("", 1400))
}

func TestSplit_WhitespaceOnlyInput(t *testing.T) {
	req := require.New(t)

	// Under the budget the input passes through verbatim.
	req.Equal([]string{"   "}, Split("   ", 10))

	// Over the budget there is no boundary to prefer, so it is hard-cut.
	blanks := strings.Repeat(" ", 25)
	chunks := Split(blanks, 10)
	req.Equal([]string{strings.Repeat(" ", 10), strings.Repeat(" ", 10), strings.Repeat(" ", 5)}, chunks)
}

func TestSplit_SentenceBoundariesPreferred(t *testing.T) {
	req := require.New(t)

	chunks := Split("aaa. bbb. ccc", 8)

	req.Equal([]string{"aaa.", "bbb.", "ccc"}, chunks)
}

func TestSplit_GreedySentencePacking(t *testing.T) {
	req := require.New(t)

	// Five ~600 char sentences against a 1400 budget pack two per chunk.
	sentence := strings.Repeat("x", 599)
	text := strings.Join([]string{sentence, sentence, sentence, sentence, sentence}, ". ")
	chunks := Split(text, 1400)

	req.Len(chunks, 3)
	req.Equal(sentence+". "+sentence+".", chunks[0])
	req.Equal(sentence+". "+sentence+".", chunks[1])
	req.Equal(sentence, chunks[2])
}

func TestSplit_WordFallbackForOversizedSentence(t *testing.T) {
	req := require.New(t)

	chunks := Split("one two three", 5)

	req.Equal([]string{"one", "two", "three"}, chunks)
}

func TestSplit_ForceCutsUnbrokenToken(t *testing.T) {
	req := require.New(t)

	token := strings.Repeat("k", 2000)
	chunks := Split(token, 1400)

	req.Len(chunks, 2)
	req.Equal(1400, len(chunks[0]))
	req.Equal(600, len(chunks[1]))
}

func TestSplit_ForceCutRespectsRuneBoundaries(t *testing.T) {
	req := require.New(t)

	// Devanagari codepoints are three bytes each; a 10-byte budget must not
	// land a cut inside a sequence.
	token := strings.Repeat("क", 8)
	for _, chunk := range Split(token, 10) {
		req.True(len(chunk) <= 10)
		req.True(strings.HasPrefix(chunk, "क"))
		req.Zero(len(chunk) % 3)
	}
}

func TestSplit_Invariants(t *testing.T) {
	req := require.New(t)

	inputs := []string{
		"A short note.",
		strings.Repeat("word ", 500),
		strings.Repeat("Sentence number one. ", 80),
		strings.Repeat("z", 5000),
		"Mixed. " + strings.Repeat("m", 300) + " tail words here. End.",
		"Trailing period pair. ",
		"no periods just a very long run of words " + strings.Repeat("again and again ", 60),
	}
	budgets := []int{20, 50, 140, 1400}

	strip := func(s string) string {
		return strings.NewReplacer(" ", "").Replace(s)
	}

	for _, text := range inputs {
		for _, max := range budgets {
			chunks := Split(text, max)
			var rebuilt strings.Builder
			for _, chunk := range chunks {
				req.NotEmpty(chunk, "no chunk may be empty")
				req.LessOrEqual(len(chunk), max, "chunk must fit the budget")
				rebuilt.WriteString(chunk)
				rebuilt.WriteString(" ")
			}
			// Order and content survive: joining chunks reproduces the text
			// up to whitespace swallowed at chunk seams.
			req.Equal(strip(text), strip(rebuilt.String()),
				"content must be preserved for budget %d", max)
		}
	}
}
