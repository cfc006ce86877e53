package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"swasthya/domain"
)

func TestAdvicePromptMentionsLanguage(t *testing.T) {
	r := require.New(t)

	prompt := AdvicePrompt("बुखार में क्या खाना चाहिए?", domain.Hindi)

	r.Contains(prompt, "Hindi")
	r.Contains(prompt, "बुखार में क्या खाना चाहिए?")
	r.Contains(prompt, "NEVER provide specific medical diagnoses")
}

func TestImagePromptQuestionQualifier(t *testing.T) {
	r := require.New(t)

	withQuestion := ImagePrompt("is this rash serious", domain.English)
	r.Contains(withQuestion, `for: "is this rash serious"`)

	withoutQuestion := ImagePrompt("", domain.Telugu)
	r.NotContains(withoutQuestion, "for:")
	r.Contains(withoutQuestion, "Telugu")
}

func TestCapResponse(t *testing.T) {
	disclaimer := disclaimerByLang[domain.English]
	emergency := emergencyImageFallbackByLang[domain.English]

	tests := []struct {
		name string
		body string
		want func(r *require.Assertions, got string)
	}{
		{
			name: "short body untouched",
			body: "Drink plenty of water and rest.",
			want: func(r *require.Assertions, got string) {
				r.Equal("Drink plenty of water and rest."+disclaimer, got)
			},
		},
		{
			name: "long body truncated line-wise",
			body: strings.Repeat("Wash your hands before eating.\n", 100),
			want: func(r *require.Assertions, got string) {
				r.LessOrEqual(len(got), responseCap)
				r.True(strings.HasSuffix(got, disclaimer))
				r.True(strings.HasPrefix(got, "Wash your hands before eating."))
			},
		},
		{
			name: "single oversized line falls back",
			body: strings.Repeat("x", responseCap+1),
			want: func(r *require.Assertions, got string) {
				r.Equal(emergency, got)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(require.New(t), capResponse(tt.body, disclaimer, emergency))
		})
	}
}

func TestHelpMessageFallsBackToEnglish(t *testing.T) {
	r := require.New(t)

	r.Equal(helpMessageByLang[domain.Hindi], HelpMessage(domain.Hindi))
	r.Equal(helpMessageByLang[domain.English], HelpMessage(domain.Language("fr")))
}
