package repository

import "time"

// UpdateTaskOptions carries the fields of a partial task update. Nil
// fields are left out of the request so the stored values survive.
type UpdateTaskOptions struct {
	Title       *string
	DueDate     *time.Time
	Priority    *int
	ProjectID   *int64
	RepeatAfter *int64
	RepeatMode  *int64
}

// ListTasksOptions holds paging parameters for listing tasks.
type ListTasksOptions struct {
	Page    int // 1-based page number, 0 means first page
	PerPage int // results per page, 0 uses the store default
}
