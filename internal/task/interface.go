package task

import (
	"context"

	"taskmagic/internal/model"
)

// UseCase defines the business logic interface for task enrichment.
type UseCase interface {
	// EnrichCreated enriches a freshly created task already in hand,
	// honoring the already-scheduled guard. Webhook delivery calls it with
	// the task from the event payload.
	EnrichCreated(ctx context.Context, t model.Task) (EnrichResult, error)

	// EnrichTask fetches a task by ID and enriches it. Force bypasses the
	// already-scheduled guard.
	EnrichTask(ctx context.Context, input EnrichTaskInput) (EnrichResult, error)

	// Preview runs the extraction engine over text without touching the
	// store.
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)
}
