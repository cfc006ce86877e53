package e2e

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
	client *http.Client
}

// SetupSuite loads the environment configuration before running tests.
// Suites are skipped entirely when no target instance is configured.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.BaseURL == "" {
		s.T().Skip("E2E_BASE_URL not set, skipping end-to-end suite")
	}
	s.client = &http.Client{Timeout: 90 * time.Second}
}

// Step prints a colorized header so multi-step scenarios read well in logs.
func (s *BaseHTTPSuite) Step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// PostWebhook simulates an inbound Twilio form post and returns the status
// code with the raw body.
func (s *BaseHTTPSuite) PostWebhook(t *testing.T, form url.Values) (int, string) {
	start := time.Now()
	resp, err := s.client.PostForm(s.Config.BaseURL+"/whatsapp", form)
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "POST /whatsapp [%d] in %v", resp.StatusCode, time.Since(start))
	if s.Config.DebugHTTP {
		fmt.Fprintln(&logBuilder, "\nREQUEST:", form.Encode())
		fmt.Fprintln(&logBuilder, "RESPONSE:", string(body))
	}
	t.Log(logBuilder.String())

	return resp.StatusCode, string(body)
}

// GetJSON fetches a path and returns the status code with the raw body.
func (s *BaseHTTPSuite) GetJSON(t *testing.T, path string) (int, string) {
	resp, err := s.client.Get(s.Config.BaseURL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(body)
}
