// Package quickadd extracts structured task attributes from a single line
// of freeform Russian/English text carrying quick-add markers.
package quickadd

import "time"

// RepeatMode selects how the task store advances a repeating task's due date.
type RepeatMode int64

const (
	// RepeatModeInterval repeats a fixed number of seconds after the due date.
	RepeatModeInterval RepeatMode = 0

	// RepeatModeMonth repeats on the same day of every month.
	RepeatModeMonth RepeatMode = 1

	// RepeatModeFromCurrent repeats relative to the completion time. The
	// store accepts it on manually-created tasks; Parse never produces it.
	RepeatModeFromCurrent RepeatMode = 3
)

// Patch holds the attributes extracted from one line of quick-add text.
// Zero values mean the corresponding marker was not present.
type Patch struct {
	DueDate     time.Time  `json:"due_date"`
	Priority    int        `json:"priority,omitempty"`
	ProjectName string     `json:"project_name,omitempty"`
	Labels      []string   `json:"labels,omitempty"`
	RepeatAfter int64      `json:"repeat_after,omitempty"`
	RepeatMode  RepeatMode `json:"repeat_mode"`
	Title       string     `json:"title,omitempty"`
}

// HasDueDate reports whether a due date was extracted.
func (p *Patch) HasDueDate() bool {
	return !p.DueDate.IsZero()
}

// HasRecurrence reports whether any repeat rule was extracted.
func (p *Patch) HasRecurrence() bool {
	return p.RepeatAfter > 0 || p.RepeatMode == RepeatModeMonth
}

func (p *Patch) empty() bool {
	return !p.HasDueDate() && p.Priority == 0 && p.ProjectName == "" &&
		len(p.Labels) == 0 && !p.HasRecurrence() && p.Title == ""
}
