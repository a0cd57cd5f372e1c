package webhook

import (
	"taskmagic/internal/task"
	pkgLog "taskmagic/pkg/log"
)

type Handler struct {
	uc       task.UseCase
	security *SecurityValidator
	l        pkgLog.Logger
}

func NewHandler(
	uc task.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		uc:       uc,
		security: NewSecurityValidator(securityConfig),
		l:        l,
	}
}
