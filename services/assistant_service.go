package services

import (
	"context"
	"log/slog"
	"strings"

	"swasthya/ai"
	"swasthya/contract"
	"swasthya/delivery"
	"swasthya/domain"
	"swasthya/intent"
	"swasthya/language"
	"swasthya/observability"
	"swasthya/outbreak"
)

type IAssistantService interface {
	Handle(ctx context.Context, msg domain.InboundMessage) delivery.Result
}

// AssistantService turns one inbound WhatsApp message into one delivered
// reply: detect the language, route the intent, produce the text and hand it
// to the dispatcher.
type AssistantService struct {
	log        *slog.Logger
	router     *intent.Router
	advisor    contract.Advisor
	bulletins  contract.BulletinSource
	media      contract.MediaFetcher
	dispatcher *delivery.Dispatcher
	metrics    *observability.Metrics
}

func NewAssistantService(
	log *slog.Logger,
	router *intent.Router,
	advisor contract.Advisor,
	bulletins contract.BulletinSource,
	media contract.MediaFetcher,
	dispatcher *delivery.Dispatcher,
	metrics *observability.Metrics,
) *AssistantService {
	return &AssistantService{
		log:        log,
		router:     router,
		advisor:    advisor,
		bulletins:  bulletins,
		media:      media,
		dispatcher: dispatcher,
		metrics:    metrics,
	}
}

func (s *AssistantService) Handle(ctx context.Context, msg domain.InboundMessage) delivery.Result {
	s.metrics.IncrMessagesReceived()

	var result delivery.Result
	if msg.HasImage() {
		result = s.handleImage(ctx, msg)
	} else {
		result = s.handleText(ctx, msg)
	}

	s.record(result)
	s.log.Info("Message handled",
		"id", msg.ID,
		"sender", msg.Sender,
		"outcome", result.Outcome,
		"sent", result.Sent,
		"total", result.Total,
	)
	return result
}

func (s *AssistantService) handleText(ctx context.Context, msg domain.InboundMessage) delivery.Result {
	body := strings.TrimSpace(msg.Body)
	lang := language.Detect(body)

	if body == "" {
		return s.dispatcher.Deliver(ctx, msg.Sender, ai.HelpMessage(lang))
	}

	var text string
	switch s.router.Route(body) {
	case intent.OutbreakInfo:
		s.metrics.IncrBulletinLookups()
		links, err := s.bulletins.Latest(ctx, outbreak.DefaultWeeks)
		if err != nil {
			s.log.Warn("Bulletin lookup failed", "error", err)
			text = outbreak.Unavailable(lang)
		} else {
			text = outbreak.Respond(links, lang)
		}
	default:
		text = s.advisor.Advice(ctx, body, lang)
	}

	return s.dispatcher.Deliver(ctx, msg.Sender, text)
}

func (s *AssistantService) handleImage(ctx context.Context, msg domain.InboundMessage) delivery.Result {
	lang := language.Detect(msg.Body)

	image, mime, err := s.media.Fetch(ctx, msg.MediaURL)
	if err != nil {
		s.log.Warn("Media fetch failed", "url", msg.MediaURL, "error", err)
		return s.dispatcher.Deliver(ctx, msg.Sender, ai.ImageErrorMessage(lang))
	}

	s.metrics.IncrImagesAnalyzed()
	text := s.advisor.AnalyzeImage(ctx, image, mime, strings.TrimSpace(msg.Body), lang)
	return s.dispatcher.Deliver(ctx, msg.Sender, text)
}

func (s *AssistantService) record(result delivery.Result) {
	s.metrics.AddChunksSent(uint64(result.Sent))
	switch result.Outcome {
	case delivery.FullySent, delivery.PartiallySent:
		s.metrics.IncrRepliesSent()
	case delivery.QuotaExhausted:
		s.metrics.IncrQuotaRejections()
	case delivery.ChannelError:
		s.metrics.IncrChannelErrors()
	}
}
