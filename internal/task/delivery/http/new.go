package http

import (
	"github.com/gin-gonic/gin"

	"taskmagic/internal/task"
	pkgLog "taskmagic/pkg/log"
)

// Handler is the interface for the task HTTP delivery handler.
type Handler interface {
	Preview(c *gin.Context)
	Enrich(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
