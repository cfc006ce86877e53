package delivery

import (
	"sync"
	"time"
)

const quotaWindow = 24 * time.Hour

// QuotaGuard tracks messages sent in a rolling 24-hour window against a fixed
// daily ceiling. It owns its counter exclusively: it performs no I/O, never
// fails, and signals exhaustion only through its boolean gates. All state
// transitions happen under one mutex so concurrent dispatchers cannot jointly
// exceed the limit.
type QuotaGuard struct {
	mu            sync.Mutex
	dailyLimit    int
	count         int
	windowResetAt time.Time
	now           func() time.Time
}

// NewQuotaGuard starts a fresh window: count zero, reset due in 24 hours.
func NewQuotaGuard(dailyLimit int) *QuotaGuard {
	now := time.Now
	return &QuotaGuard{
		dailyLimit:    dailyLimit,
		windowResetAt: now().Add(quotaWindow),
		now:           now,
	}
}

// CanSend rolls the window if it has expired and reports whether quota
// remains. It does not consume quota.
func (q *QuotaGuard) CanSend() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.roll()
	return q.count < q.dailyLimit
}

// RecordSend consumes one unit of quota. Call it exactly once per
// successfully delivered chunk, never for failed or skipped sends.
func (q *QuotaGuard) RecordSend() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.count++
}

// TryAcquire is the check-and-increment used on the dispatch path: it rolls
// the window, checks the ceiling, and reserves one unit in a single critical
// section. A reservation for a send that subsequently fails must be returned
// with Release so failed sends are never counted.
func (q *QuotaGuard) TryAcquire() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.roll()
	if q.count >= q.dailyLimit {
		return false
	}
	q.count++
	return true
}

// Release returns one reserved unit after a failed send.
func (q *QuotaGuard) Release() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.count > 0 {
		q.count--
	}
}

// Remaining reports the quota left in the current window.
func (q *QuotaGuard) Remaining() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.roll()
	if q.count >= q.dailyLimit {
		return 0
	}
	return q.dailyLimit - q.count
}

// roll lazily resets the window once its deadline has passed.
// Callers must hold q.mu.
func (q *QuotaGuard) roll() {
	if q.now().After(q.windowResetAt) {
		q.count = 0
		q.windowResetAt = q.now().Add(quotaWindow)
	}
}
