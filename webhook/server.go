// Package webhook exposes the HTTP surface of the assistant: the Twilio
// WhatsApp webhook, a health endpoint and a debug counters endpoint.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"swasthya/domain"
	"swasthya/observability"
	"swasthya/services"
	"swasthya/whatsapp"
)

// emptyTwiML tells Twilio the webhook was handled and no inline reply
// should be generated. Replies go out through the REST API instead.
const emptyTwiML = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`

type Server struct {
	log       *slog.Logger
	service   services.IAssistantService
	validator *whatsapp.Validator
	metrics   *observability.Metrics
	publicURL string
	server    *http.Server
}

func NewServer(
	log *slog.Logger,
	service services.IAssistantService,
	validator *whatsapp.Validator,
	metrics *observability.Metrics,
	publicURL string,
) *Server {
	return &Server{
		log:       log,
		service:   service,
		validator: validator,
		metrics:   metrics,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHealth)
	r.Get("/debug/stats", s.handleStats)
	r.With(s.requireSignature).Post("/whatsapp", s.handleInbound)

	return r
}

// ListenAndServe blocks until the context is cancelled, then drains inflight
// requests before returning.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Webhook server listening", "addr", addr)
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "swasthya",
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.metrics.Snapshot())
}

func (s *Server) handleInbound(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	msg := domain.InboundMessage{
		ID:     uuid.New(),
		Sender: r.PostFormValue("From"),
		Body:   r.PostFormValue("Body"),
		At:     time.Now(),
	}
	if r.PostFormValue("NumMedia") != "" && r.PostFormValue("NumMedia") != "0" {
		msg.MediaURL = r.PostFormValue("MediaUrl0")
		msg.MediaType = r.PostFormValue("MediaContentType0")
	}

	if msg.Sender == "" {
		http.Error(w, "missing sender", http.StatusBadRequest)
		return
	}

	s.log.Debug("Webhook received", "id", msg.ID, "sender", msg.Sender, "has_image", msg.HasImage())
	s.service.Handle(r.Context(), msg)

	w.Header().Set("Content-Type", "text/xml")
	fmt.Fprint(w, emptyTwiML)
}

// requireSignature rejects requests whose X-Twilio-Signature does not match
// the posted form. The signature is computed over the public URL Twilio
// called, not the address the server listens on.
func (s *Server) requireSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}

		params := make(map[string]string, len(r.PostForm))
		for key := range r.PostForm {
			params[key] = r.PostFormValue(key)
		}

		url := s.publicURL + r.URL.RequestURI()
		signature := r.Header.Get("X-Twilio-Signature")
		if !s.validator.Valid(url, params, signature) {
			s.log.Warn("Rejected webhook with invalid signature", "remote", r.RemoteAddr)
			http.Error(w, "invalid signature", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
