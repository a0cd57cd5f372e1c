package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskmagic/internal/task/repository"
	"taskmagic/pkg/gcalendar"
	pkgLog "taskmagic/pkg/log"
)

// resolverCacheSize bounds the name→ID caches. Stores rarely carry more
// projects or labels than this.
const resolverCacheSize = 256

// CalendarOptions configures the optional calendar mirror.
type CalendarOptions struct {
	CalendarID    string        // empty targets "primary"
	EventDuration time.Duration // zero means one hour
}

type implUseCase struct {
	l        pkgLog.Logger
	store    repository.TaskStore
	calendar *gcalendar.Client // nil disables the calendar mirror
	calOpts  CalendarOptions

	projects *expirable.LRU[string, int64]
	labels   *expirable.LRU[string, int64]

	nowFn func() time.Time
}

// New creates a new task UseCase instance. cacheTTL bounds how long
// resolved project and label IDs are trusted before the store is asked
// again.
func New(
	l pkgLog.Logger,
	store repository.TaskStore,
	calendar *gcalendar.Client,
	calOpts CalendarOptions,
	cacheTTL time.Duration,
) *implUseCase {
	if calOpts.EventDuration <= 0 {
		calOpts.EventDuration = time.Hour
	}
	return &implUseCase{
		l:        l,
		store:    store,
		calendar: calendar,
		calOpts:  calOpts,
		projects: expirable.NewLRU[string, int64](resolverCacheSize, nil, cacheTTL),
		labels:   expirable.NewLRU[string, int64](resolverCacheSize, nil, cacheTTL),
		nowFn:    time.Now,
	}
}
