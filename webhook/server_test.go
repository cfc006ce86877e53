package webhook

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"swasthya/delivery"
	"swasthya/domain"
	"swasthya/mocks/services"
	"swasthya/observability"
	"swasthya/whatsapp"
)

func newTestServer(t *testing.T) (*Server, *mocks.MockIAssistantService) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIAssistantService(ctrl)

	// Signature validation disabled so tests post plain forms.
	validator := whatsapp.NewValidator("token", false)
	server := NewServer(log, service, validator, observability.NewMetrics(log), "https://example.org")
	return server, service
}

func postForm(t *testing.T, router http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/whatsapp", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	r := require.New(t)
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	r.Equal(http.StatusOK, rec.Code)

	var body map[string]string
	r.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	r.Equal("healthy", body["status"])
}

func TestInboundTextMessage(t *testing.T) {
	r := require.New(t)
	server, service := newTestServer(t)

	service.EXPECT().
		Handle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx any, msg domain.InboundMessage) delivery.Result {
			r.Equal("whatsapp:+919876543210", msg.Sender)
			r.Equal("What causes dengue?", msg.Body)
			r.False(msg.HasImage())
			return delivery.Result{Outcome: delivery.FullySent, Sent: 1, Total: 1}
		})

	rec := postForm(t, server.Router(), url.Values{
		"From":     {"whatsapp:+919876543210"},
		"Body":     {"What causes dengue?"},
		"NumMedia": {"0"},
	})

	r.Equal(http.StatusOK, rec.Code)
	r.Equal("text/xml", rec.Header().Get("Content-Type"))
	r.Contains(rec.Body.String(), "<Response></Response>")
}

func TestInboundImageMessage(t *testing.T) {
	r := require.New(t)
	server, service := newTestServer(t)

	service.EXPECT().
		Handle(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx any, msg domain.InboundMessage) delivery.Result {
			r.True(msg.HasImage())
			r.Equal("https://api.twilio.com/media/ME123", msg.MediaURL)
			r.Equal("image/jpeg", msg.MediaType)
			return delivery.Result{Outcome: delivery.FullySent, Sent: 1, Total: 1}
		})

	rec := postForm(t, server.Router(), url.Values{
		"From":              {"whatsapp:+919876543210"},
		"Body":              {""},
		"NumMedia":          {"1"},
		"MediaUrl0":         {"https://api.twilio.com/media/ME123"},
		"MediaContentType0": {"image/jpeg"},
	})

	r.Equal(http.StatusOK, rec.Code)
}

func TestInboundMissingSenderRejected(t *testing.T) {
	r := require.New(t)
	server, _ := newTestServer(t)

	rec := postForm(t, server.Router(), url.Values{"Body": {"hello"}})

	r.Equal(http.StatusBadRequest, rec.Code)
}

func TestSignatureRejection(t *testing.T) {
	r := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIAssistantService(ctrl)

	validator := whatsapp.NewValidator("token", true)
	server := NewServer(log, service, validator, observability.NewMetrics(log), "https://example.org")

	rec := postForm(t, server.Router(), url.Values{
		"From": {"whatsapp:+919876543210"},
		"Body": {"hello"},
	})

	r.Equal(http.StatusForbidden, rec.Code)
}

func TestStatsEndpoint(t *testing.T) {
	r := require.New(t)
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/debug/stats", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	r.Equal(http.StatusOK, rec.Code)

	var stats observability.Stats
	r.NoError(json.Unmarshal(rec.Body.Bytes(), &stats))
	r.Equal(uint64(0), stats.MessagesReceived)
}
