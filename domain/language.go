package domain

// Language is one of the assistant's supported reply languages.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Telugu  Language = "te"
)

// Name returns the human readable language name used in prompts.
func (l Language) Name() string {
	switch l {
	case Hindi:
		return "Hindi"
	case Telugu:
		return "Telugu"
	default:
		return "English"
	}
}

// Valid reports whether l is a supported language code.
func (l Language) Valid() bool {
	return l == English || l == Hindi || l == Telugu
}
