// Package media downloads message attachments and verifies that they really
// are images before they reach the vision model.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"swasthya/errors"
)

const (
	downloadTimeout = 30 * time.Second
	// maxImageBytes bounds attachment downloads; the channel itself caps
	// media at a few megabytes.
	maxImageBytes = 16 << 20

	twilioHost = "api.twilio.com"
)

// Fetcher retrieves attachments from the channel's media store. Twilio media
// URLs require the account credentials as basic auth; other hosts are
// fetched plainly.
type Fetcher struct {
	log        *slog.Logger
	client     *http.Client
	accountSID string
	authToken  string
}

func NewFetcher(log *slog.Logger, accountSID, authToken string) *Fetcher {
	return &Fetcher{
		log:        log,
		client:     &http.Client{Timeout: downloadTimeout},
		accountSID: accountSID,
		authToken:  authToken,
	}
}

// Fetch downloads url and returns the payload with its sniffed MIME type.
// Content that does not sniff as an image is rejected with ErrNotAnImage:
// the channel's declared content type is advisory only.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("building media request: %w", err)
	}
	if strings.Contains(req.URL.Host, twilioHost) {
		req.SetBasicAuth(f.accountSID, f.authToken)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("downloading media: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("media download returned status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, "", fmt.Errorf("reading media body: %w", err)
	}

	mime := mimetype.Detect(payload)
	if !strings.HasPrefix(mime.String(), "image/") {
		f.log.Warn("attachment rejected", "mime", mime.String(), "url", url)
		return nil, mime.String(), errors.ErrNotAnImage
	}

	f.log.Info("attachment downloaded", "mime", mime.String(), "bytes", len(payload))
	return payload, mime.String(), nil
}
