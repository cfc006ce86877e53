package outbreak

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"swasthya/domain"
)

// DefaultWeeks is how many recent bulletins a reply lists.
const DefaultWeeks = 4

// LinkFetcher is what the cache needs from a scraper.
type LinkFetcher interface {
	FetchLinks(ctx context.Context, n int) ([]domain.BulletinLink, error)
}

// Service serves bulletin links from an in-memory cache so user queries do
// not hit the government site on every turn. It satisfies
// contract.BulletinSource.
type Service struct {
	log     *slog.Logger
	scraper LinkFetcher
	ttl     time.Duration

	mu        sync.RWMutex
	cached    []domain.BulletinLink
	fetchedAt time.Time

	now func() time.Time
}

func NewService(log *slog.Logger, scraper LinkFetcher, ttl time.Duration) *Service {
	return &Service{
		log:     log,
		scraper: scraper,
		ttl:     ttl,
		now:     time.Now,
	}
}

// Latest returns up to n cached links, re-scraping when the cache is cold or
// stale. A failed refresh falls back to stale data rather than erroring out
// a user turn.
func (s *Service) Latest(ctx context.Context, n int) ([]domain.BulletinLink, error) {
	s.mu.RLock()
	fresh := s.cached != nil && s.now().Sub(s.fetchedAt) < s.ttl
	cached := s.cached
	s.mu.RUnlock()

	if fresh {
		return take(cached, n), nil
	}

	links, err := s.scraper.FetchLinks(ctx, 0)
	if err != nil {
		if cached != nil {
			s.log.Warn("bulletin refresh failed, serving stale cache", "error", err)
			return take(cached, n), nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.cached = links
	s.fetchedAt = s.now()
	s.mu.Unlock()
	return take(links, n), nil
}

// Refresh forces a scrape and swaps the cache on success.
func (s *Service) Refresh(ctx context.Context) error {
	links, err := s.scraper.FetchLinks(ctx, 0)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cached = links
	s.fetchedAt = s.now()
	s.mu.Unlock()
	return nil
}

func take(links []domain.BulletinLink, n int) []domain.BulletinLink {
	if n <= 0 || n >= len(links) {
		return links
	}
	return links[:n]
}

// RefreshWorker keeps the bulletin cache warm in the background. It runs
// under the supervisor and tolerates scrape failures: the next tick retries.
type RefreshWorker struct {
	log      *slog.Logger
	service  *Service
	interval time.Duration
}

func NewRefreshWorker(log *slog.Logger, service *Service, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{log: log, service: service, interval: interval}
}

func (w *RefreshWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case <-ticker.C:
			if err := w.service.Refresh(ctx); err != nil {
				w.log.Warn("bulletin refresh failed", "error", err)
			}
		}
	}
}
