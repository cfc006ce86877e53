package observability

import (
	"log/slog"
	"sync/atomic"
)

// Stats is a point-in-time view of the assistant's counters, exposed on the
// debug endpoint.
type Stats struct {
	MessagesReceived uint64 `json:"messages_received"`
	RepliesSent      uint64 `json:"replies_sent"`
	ChunksSent       uint64 `json:"chunks_sent"`
	QuotaRejections  uint64 `json:"quota_rejections"`
	ChannelErrors    uint64 `json:"channel_errors"`
	ImagesAnalyzed   uint64 `json:"images_analyzed"`
	BulletinLookups  uint64 `json:"bulletin_lookups"`
}

// Metrics collects runtime counters with atomics so every hot path can bump
// them without locking.
type Metrics struct {
	log *slog.Logger

	messagesReceived uint64
	repliesSent      uint64
	chunksSent       uint64
	quotaRejections  uint64
	channelErrors    uint64
	imagesAnalyzed   uint64
	bulletinLookups  uint64
}

func NewMetrics(log *slog.Logger) *Metrics {
	return &Metrics{log: log}
}

func (m *Metrics) IncrMessagesReceived() {
	atomic.AddUint64(&m.messagesReceived, 1)
}

func (m *Metrics) IncrRepliesSent() {
	atomic.AddUint64(&m.repliesSent, 1)
}

// AddChunksSent records how many chunks a single delivery pushed out.
func (m *Metrics) AddChunksSent(n uint64) {
	atomic.AddUint64(&m.chunksSent, n)
}

func (m *Metrics) IncrQuotaRejections() {
	atomic.AddUint64(&m.quotaRejections, 1)
}

func (m *Metrics) IncrChannelErrors() {
	atomic.AddUint64(&m.channelErrors, 1)
}

func (m *Metrics) IncrImagesAnalyzed() {
	atomic.AddUint64(&m.imagesAnalyzed, 1)
}

func (m *Metrics) IncrBulletinLookups() {
	atomic.AddUint64(&m.bulletinLookups, 1)
}

func (m *Metrics) Snapshot() Stats {
	return Stats{
		MessagesReceived: atomic.LoadUint64(&m.messagesReceived),
		RepliesSent:      atomic.LoadUint64(&m.repliesSent),
		ChunksSent:       atomic.LoadUint64(&m.chunksSent),
		QuotaRejections:  atomic.LoadUint64(&m.quotaRejections),
		ChannelErrors:    atomic.LoadUint64(&m.channelErrors),
		ImagesAnalyzed:   atomic.LoadUint64(&m.imagesAnalyzed),
		BulletinLookups:  atomic.LoadUint64(&m.bulletinLookups),
	}
}
