package ai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"swasthya/domain"
)

const (
	// DefaultModel is the generative model used when config leaves it empty.
	DefaultModel = "gemini-2.5-flash"

	// responseCap bounds advice length before the delivery layer even sees
	// it, so most replies fit a single chunk.
	responseCap = 1200
)

// Advisor answers health questions through the Gemini API. It never surfaces
// model errors to callers: on failure it returns a canned fallback in the
// user's language so the conversation keeps flowing.
type Advisor struct {
	log    *slog.Logger
	client *genai.Client
	model  string
}

func NewAdvisor(ctx context.Context, log *slog.Logger, apiKey, model string) (*Advisor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{log: log, client: client, model: model}, nil
}

func (a *Advisor) Close() error {
	return a.client.Close()
}

// Advice generates health guidance for a text question.
func (a *Advisor) Advice(ctx context.Context, question string, lang domain.Language) string {
	gm := a.client.GenerativeModel(a.model)
	resp, err := gm.GenerateContent(ctx, genai.Text(AdvicePrompt(question, lang)))
	if err != nil {
		a.log.Error("Advice generation failed", "error", err, "language", lang)
		return pick(errorFallbackByLang, lang)
	}
	text := responseText(resp)
	if text == "" {
		a.log.Warn("Advice generation returned no text", "language", lang)
		return pick(errorFallbackByLang, lang)
	}
	return capResponse(text, pick(disclaimerByLang, lang), pick(emergencyImageFallbackByLang, lang))
}

// AnalyzeImage describes a health image using the compact WhatsApp format.
func (a *Advisor) AnalyzeImage(ctx context.Context, image []byte, mime, question string, lang domain.Language) string {
	gm := a.client.GenerativeModel(a.model)
	parts := []genai.Part{
		genai.Text(ImagePrompt(question, lang)),
		genai.ImageData(strings.TrimPrefix(mime, "image/"), image),
	}
	resp, err := gm.GenerateContent(ctx, parts...)
	if err != nil {
		a.log.Error("Image analysis failed", "error", err, "language", lang)
		return pick(imageErrorFallbackByLang, lang)
	}
	text := responseText(resp)
	if text == "" {
		a.log.Warn("Image analysis returned no text", "language", lang)
		return pick(imageErrorFallbackByLang, lang)
	}
	return capResponse(text, pick(imageDisclaimerByLang, lang), pick(emergencyImageFallbackByLang, lang))
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// capResponse appends the disclaimer and, when the total exceeds responseCap,
// truncates the body line by line so the disclaimer always survives intact.
// If even a single body line plus the disclaimer does not fit, the emergency
// fallback is returned instead.
func capResponse(body, disclaimer, emergency string) string {
	full := body + disclaimer
	if len(full) <= responseCap {
		return full
	}

	budget := responseCap - len(disclaimer)
	if budget <= 0 {
		return emergency
	}

	var kept []string
	used := 0
	for _, line := range strings.Split(body, "\n") {
		cost := len(line)
		if len(kept) > 0 {
			cost++
		}
		if used+cost > budget {
			break
		}
		kept = append(kept, line)
		used += cost
	}
	if len(kept) == 0 {
		return emergency
	}
	return strings.TrimSpace(strings.Join(kept, "\n")) + disclaimer
}
