package model

import "time"

// Task represents a task in the external store. JSON tags follow the
// store's wire names so webhook payloads and API responses decode into it
// directly. A zero DueDate is how the store says "no due date".
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Done        bool      `json:"done"`
	ProjectID   int64     `json:"project_id"`
	Priority    int       `json:"priority"`
	DueDate     time.Time `json:"due_date"`
	Labels      []Label   `json:"labels,omitempty"`
	RepeatAfter int64     `json:"repeat_after"`
	RepeatMode  int64     `json:"repeat_mode"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

// HasDueDate reports whether the task carries a real due date.
func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}

// Label is a named tag attachable to tasks.
type Label struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	HexColor string `json:"hex_color,omitempty"`
}

// Project groups tasks in the external store.
type Project struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}
