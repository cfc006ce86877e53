package delivery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"swasthya/contract"
)

const (
	// DefaultHardLimit is the channel's absolute per-message ceiling.
	DefaultHardLimit = 1500
	// indicatorHeadroom is reserved below the hard limit so a part
	// indicator never pushes a chunk over it.
	indicatorHeadroom = 100
	// DefaultInterChunkDelay biases the channel's server-side queue toward
	// chronological arrival of multi-part messages. Best effort only.
	DefaultInterChunkDelay = 1 * time.Second

	destinationPrefix = "whatsapp:"
	ellipsis          = "..."
)

// Outcome classifies the result of one Deliver call.
type Outcome int

const (
	FullySent Outcome = iota
	PartiallySent
	QuotaExhausted
	ChannelError
)

func (o Outcome) String() string {
	switch o {
	case FullySent:
		return "fully_sent"
	case PartiallySent:
		return "partially_sent"
	case QuotaExhausted:
		return "quota_exhausted"
	case ChannelError:
		return "channel_error"
	default:
		return "unknown"
	}
}

// Result reports how far a logical message got. Sent chunks stay sent: there
// is no rollback, so a partial result means the recipient already holds the
// leading parts.
type Result struct {
	Outcome Outcome
	Sent    int
	Total   int
	Err     error
}

// Delivered reports whether every chunk reached the channel.
func (r Result) Delivered() bool { return r.Outcome == FullySent }

// Dispatcher sequences chunked sends to one destination: split, annotate,
// gate on quota, send, delay. Chunks of a single logical message are strictly
// sequential; separate destinations may be dispatched concurrently by the
// caller, sharing one QuotaGuard.
type Dispatcher struct {
	log       *slog.Logger
	channel   contract.ChannelSender
	quota     *QuotaGuard
	hardLimit int
	delay     time.Duration

	sleep func(ctx context.Context, d time.Duration) error
}

func NewDispatcher(log *slog.Logger, channel contract.ChannelSender, quota *QuotaGuard, hardLimit int, delay time.Duration) *Dispatcher {
	if hardLimit <= indicatorHeadroom {
		hardLimit = DefaultHardLimit
	}
	return &Dispatcher{
		log:       log,
		channel:   channel,
		quota:     quota,
		hardLimit: hardLimit,
		delay:     delay,
		sleep:     sleepCtx,
	}
}

// Deliver splits text, annotates multi-part chunks with "[Part i/N]\n", and
// sends them in order. It stops at the first quota rejection or channel
// failure and reports how many chunks were already delivered.
func (d *Dispatcher) Deliver(ctx context.Context, destination, text string) Result {
	to := NormalizeDestination(destination)
	chunks := Split(text, d.hardLimit-indicatorHeadroom)
	total := len(chunks)
	if total == 0 {
		// Nothing to send is not an error; never emit blank messages.
		return Result{Outcome: FullySent}
	}

	for i, chunk := range chunks {
		body := chunk
		if total > 1 {
			body = d.annotate(chunk, i+1, total)
		}

		if !d.quota.TryAcquire() {
			d.log.Warn("daily message quota exhausted",
				"to", to, "sent", i, "total", total)
			return Result{Outcome: QuotaExhausted, Sent: i, Total: total}
		}

		if err := d.channel.Send(ctx, to, body); err != nil {
			d.quota.Release()
			d.log.Error("channel send failed",
				"to", to, "part", i+1, "total", total, "error", err)
			return Result{Outcome: ChannelError, Sent: i, Total: total, Err: err}
		}
		d.log.Info("chunk delivered", "to", to, "part", i+1, "total", total)

		if total > 1 && i < total-1 {
			if err := d.sleep(ctx, d.delay); err != nil {
				// Caller cancelled between parts: earlier chunks stay sent.
				return Result{Outcome: PartiallySent, Sent: i + 1, Total: total, Err: err}
			}
		}
	}
	return Result{Outcome: FullySent, Sent: total, Total: total}
}

// annotate prepends the part indicator and, when that pushes the message over
// the hard limit, trims the body (never the indicator) to fit.
func (d *Dispatcher) annotate(chunk string, part, total int) string {
	indicator := fmt.Sprintf("[Part %d/%d]\n", part, total)
	body := indicator + chunk
	if len(body) <= d.hardLimit {
		return body
	}
	avail := d.hardLimit - len(indicator) - len(ellipsis)
	cut := runeSafeCut(chunk, avail)
	return indicator + chunk[:cut] + ellipsis
}

// NormalizeDestination applies the channel addressing scheme. Idempotent.
func NormalizeDestination(destination string) string {
	if strings.HasPrefix(destination, destinationPrefix) {
		return destination
	}
	return destinationPrefix + destination
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
