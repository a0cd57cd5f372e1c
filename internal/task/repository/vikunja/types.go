package vikunja

import "time"

// updateTaskPayload is the body for POST /api/v1/tasks/{id}. Nil fields
// are left out so the store keeps its current values.
type updateTaskPayload struct {
	Title       *string    `json:"title,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	ProjectID   *int64     `json:"project_id,omitempty"`
	RepeatAfter *int64     `json:"repeat_after,omitempty"`
	RepeatMode  *int64     `json:"repeat_mode,omitempty"`
}

// createLabelPayload is the body for PUT /api/v1/labels.
type createLabelPayload struct {
	Title string `json:"title"`
}

// addLabelPayload is the body for PUT /api/v1/tasks/{id}/labels.
type addLabelPayload struct {
	LabelID int64 `json:"label_id"`
}
