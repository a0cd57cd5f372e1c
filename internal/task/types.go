package task

import (
	"time"

	"taskmagic/internal/quickadd"
)

// EnrichTaskInput identifies the task to enrich.
type EnrichTaskInput struct {
	TaskID int64
	Force  bool // bypass the already-scheduled guard
}

// Skip reasons reported when enrichment decides not to touch a task.
const (
	SkipAlreadyScheduled = "task already has a due date"
	SkipNoMarkers        = "no quick-add markers in title"
)

// EnrichResult says what enrichment did with one task.
type EnrichResult struct {
	TaskID       int64
	Applied      bool
	SkipReason   string          // set when Applied is false
	Patch        *quickadd.Patch // what the engine extracted, nil on no match
	ProjectID    int64           // resolved project, 0 when unresolved
	LabelIDs     []int64         // labels attached to the task
	FailedLabels []string        // labels that could not be attached
	CalendarLink string          // set when the calendar mirror created an event
}

// PreviewInput is a line of text plus an optional pinned instant.
type PreviewInput struct {
	Text string
	Now  time.Time // zero means the server clock
}

// PreviewOutput is the raw engine result.
type PreviewOutput struct {
	Patch *quickadd.Patch // nil when the text has no markers
}
