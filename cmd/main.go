package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"

	"swasthya/ai"
	"swasthya/delivery"
	"swasthya/intent"
	"swasthya/media"
	"swasthya/observability"
	"swasthya/outbreak"
	"swasthya/runtime/workers"
	"swasthya/services"
	"swasthya/webhook"
	"swasthya/whatsapp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning the error to main keeps every defer running before the process exits.
func run() error {
	// 1. Configuration & Logger
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Outbound channel & delivery pipeline
	sender := whatsapp.NewSender(log, config.TwilioAccountSID, config.TwilioAuthToken, config.WhatsAppFrom)
	quota := delivery.NewQuotaGuard(config.DailyMessageLimit)
	dispatcher := delivery.NewDispatcher(log, sender, quota, config.MaxMessageLength, config.InterChunkDelay)

	// 4. Advisor (Gemini)
	advisor, err := ai.NewAdvisor(ctx, log, config.GeminiAPIKey, config.GeminiModel)
	if err != nil {
		return fmt.Errorf("advisor init: %w", err)
	}
	defer func() {
		log.Info("Closing Gemini client...")
		_ = advisor.Close()
	}()

	// 5. Outbreak bulletins
	scraper := outbreak.NewScraper(log, config.BulletinBaseURL)
	bulletins := outbreak.NewService(log, scraper, config.BulletinCacheTTL)

	// 6. Intent routing & assistant service
	router, err := intent.NewRouter()
	if err != nil {
		return fmt.Errorf("intent router init: %w", err)
	}
	metrics := observability.NewMetrics(log)
	fetcher := media.NewFetcher(log, config.TwilioAccountSID, config.TwilioAuthToken)
	assistant := services.NewAssistantService(log, router, advisor, bulletins, fetcher, dispatcher, metrics)

	// 7. Background workers under supervision
	sup := workers.NewSupervisor(log)
	sup.Add(
		outbreak.NewRefreshWorker(log, bulletins, config.BulletinRefresh),
		observability.NewHeartbeatWorker(log, metrics, config.HeartbeatInterval),
	)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sup.Run(ctx)
	}()

	// 8. Webhook server
	validator := whatsapp.NewValidator(config.TwilioAuthToken, config.ValidateSignature)
	server := webhook.NewServer(log, assistant, validator, metrics, config.PublicURL)

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	if err := server.ListenAndServe(ctx, addr); err != nil && err != http.ErrServerClosed {
		sup.Stop()
		wg.Wait()
		return fmt.Errorf("webhook server: %w", err)
	}

	// 9. Final Cleanup
	log.Info("Shutting down gracefully...")
	sup.Stop()
	wg.Wait()
	log.Info("Program stopped cleanly")

	return nil
}
