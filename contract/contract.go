//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"swasthya/domain"
)

// ChannelSender is the single-message send operation of the outbound
// messaging channel. Implementations must respect ctx cancellation.
type ChannelSender interface {
	Send(ctx context.Context, to, body string) error
}

// Advisor produces health guidance text for a user turn.
type Advisor interface {
	Advice(ctx context.Context, question string, lang domain.Language) string
	AnalyzeImage(ctx context.Context, image []byte, mime, question string, lang domain.Language) string
}

// BulletinSource yields the latest outbreak bulletin links.
type BulletinSource interface {
	Latest(ctx context.Context, n int) ([]domain.BulletinLink, error)
}

// MediaFetcher downloads an attachment and reports its detected MIME type.
type MediaFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, string, error)
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
