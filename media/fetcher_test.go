package media

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"swasthya/errors"
)

// Minimal valid 1x1 GIF.
var gifPayload = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\x00\x00\x00\xff\xff\xff!\xf9\x04\x00\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

func newFetcher(t *testing.T) *Fetcher {
	t.Helper()
	return NewFetcher(logs.GetLoggerFromLevel(slog.LevelDebug), "AC0000", "secret")
}

func TestFetcher_FetchAcceptsImages(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(gifPayload)
	}))
	defer srv.Close()

	payload, mime, err := newFetcher(t).Fetch(context.Background(), srv.URL)
	req.NoError(err)
	req.Equal("image/gif", mime)
	req.Equal(gifPayload, payload)
}

func TestFetcher_FetchRejectsNonImages(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Declared content type lies; the sniffer must win.
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("%PDF-1.4 not an image at all"))
	}))
	defer srv.Close()

	_, _, err := newFetcher(t).Fetch(context.Background(), srv.URL)
	req.ErrorIs(err, errors.ErrNotAnImage)
}

func TestFetcher_FetchSurfacesHTTPErrors(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, _, err := newFetcher(t).Fetch(context.Background(), srv.URL)
	req.Error(err)
	req.Contains(err.Error(), "404")
}
