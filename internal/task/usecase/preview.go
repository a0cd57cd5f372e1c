package usecase

import (
	"context"
	"strings"

	"taskmagic/internal/quickadd"
	"taskmagic/internal/task"
)

// Preview runs the extraction engine on a line of text without touching
// the store. A nil patch in the output means the text carries no markers.
func (uc *implUseCase) Preview(ctx context.Context, input task.PreviewInput) (task.PreviewOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.PreviewOutput{}, task.ErrEmptyText
	}

	now := input.Now
	if now.IsZero() {
		now = uc.nowFn()
	}

	return task.PreviewOutput{Patch: quickadd.Parse(input.Text, now)}, nil
}
