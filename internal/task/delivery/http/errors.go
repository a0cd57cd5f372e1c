package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskmagic/internal/task"
	"taskmagic/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown
// errors become an opaque 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrEmptyText):
		response.BadRequest(c, err, nil)
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, task.ErrTaskNotFound)
	case errors.Is(err, task.ErrStoreUnavailable):
		response.ServiceUnavailable(c, task.ErrStoreUnavailable)
	default:
		response.InternalError(c)
	}
}
