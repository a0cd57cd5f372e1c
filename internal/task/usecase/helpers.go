package usecase

import (
	"errors"

	"taskmagic/internal/task"
	"taskmagic/internal/task/repository"
)

// mapStoreErr translates repository failures into domain errors so
// delivery layers never import the repository package.
func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return task.ErrTaskNotFound
	case errors.Is(err, repository.ErrUnavailable):
		return task.ErrStoreUnavailable
	default:
		return err
	}
}
