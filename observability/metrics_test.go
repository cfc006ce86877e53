package observability

import (
	"log/slog"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestMetricsSnapshot(t *testing.T) {
	r := require.New(t)
	m := NewMetrics(logs.GetLoggerFromLevel(slog.LevelDebug))

	m.IncrMessagesReceived()
	m.IncrMessagesReceived()
	m.IncrRepliesSent()
	m.AddChunksSent(3)
	m.IncrQuotaRejections()
	m.IncrChannelErrors()
	m.IncrImagesAnalyzed()
	m.IncrBulletinLookups()

	stats := m.Snapshot()
	r.Equal(uint64(2), stats.MessagesReceived)
	r.Equal(uint64(1), stats.RepliesSent)
	r.Equal(uint64(3), stats.ChunksSent)
	r.Equal(uint64(1), stats.QuotaRejections)
	r.Equal(uint64(1), stats.ChannelErrors)
	r.Equal(uint64(1), stats.ImagesAnalyzed)
	r.Equal(uint64(1), stats.BulletinLookups)
}

func TestMetricsConcurrentIncrements(t *testing.T) {
	r := require.New(t)
	m := NewMetrics(logs.GetLoggerFromLevel(slog.LevelDebug))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncrMessagesReceived()
			m.AddChunksSent(2)
		}()
	}
	wg.Wait()

	stats := m.Snapshot()
	r.Equal(uint64(100), stats.MessagesReceived)
	r.Equal(uint64(200), stats.ChunksSent)
}
