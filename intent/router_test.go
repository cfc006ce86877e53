package intent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRouter_Route(t *testing.T) {
	req := require.New(t)
	router, err := NewRouter()
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected Intent
	}{
		{
			name:     "English outbreak query",
			input:    "What are the latest disease outbreaks in my state?",
			expected: OutbreakInfo,
		},
		{
			name:     "Spaced out keyword still matches",
			input:    "any OUT-BREAK news?",
			expected: OutbreakInfo,
		},
		{
			name:     "Hindi outbreak query",
			input:    "मेरे राज्य में बीमारी का प्रकोप",
			expected: OutbreakInfo,
		},
		{
			name:     "Telugu outbreak query",
			input:    "నా రాష్ట్రంలో వ్యాధి వ్యాప్తి గురించి చెప్పండి",
			expected: OutbreakInfo,
		},
		{
			name:     "General health question",
			input:    "How much water should I drink every day?",
			expected: HealthAdvice,
		},
		{
			name:     "Empty input",
			input:    "",
			expected: HealthAdvice,
		},
		{
			name:     "Punctuation only",
			input:    "?! .",
			expected: HealthAdvice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, router.Route(tt.input))
		})
	}
}
