package e2e

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"

	"swasthya/observability"
)

// WebhookScenarioSuite exercises a running instance end to end. It requires
// E2E_BASE_URL and an instance started with VALIDATE_TWILIO_SIGNATURE=false.
type WebhookScenarioSuite struct {
	BaseHTTPSuite
}

func TestWebhookScenarioSuite(t *testing.T) {
	suite.Run(t, new(WebhookScenarioSuite))
}

func (s *WebhookScenarioSuite) TestHealthEndpoint() {
	t := s.T()
	s.Step(t, "Health check")

	status, body := s.GetJSON(t, "/")
	s.Equal(http.StatusOK, status)
	s.Contains(body, "healthy")
}

func (s *WebhookScenarioSuite) TestTextQuestionRoundTrip() {
	t := s.T()
	s.Step(t, "Inbound health question")

	statusBefore, bodyBefore := s.GetJSON(t, "/debug/stats")
	s.Equal(http.StatusOK, statusBefore)
	var before observability.Stats
	s.Require().NoError(json.Unmarshal([]byte(bodyBefore), &before))

	code, body := s.PostWebhook(t, url.Values{
		"From":     {s.Config.Sender},
		"Body":     {"How can I prevent dengue at home?"},
		"NumMedia": {"0"},
	})
	s.Equal(http.StatusOK, code)
	s.Contains(body, "<Response></Response>")

	s.Step(t, "Counters moved")
	statusAfter, bodyAfter := s.GetJSON(t, "/debug/stats")
	s.Equal(http.StatusOK, statusAfter)
	var after observability.Stats
	s.Require().NoError(json.Unmarshal([]byte(bodyAfter), &after))
	s.Greater(after.MessagesReceived, before.MessagesReceived)
}

func (s *WebhookScenarioSuite) TestOutbreakQuestion() {
	t := s.T()
	s.Step(t, "Inbound outbreak question")

	code, body := s.PostWebhook(t, url.Values{
		"From":     {s.Config.Sender},
		"Body":     {"Any disease outbreak news this week?"},
		"NumMedia": {"0"},
	})
	s.Equal(http.StatusOK, code)
	s.Contains(body, "<Response></Response>")
}
