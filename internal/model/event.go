package model

import "time"

// WebhookEventTaskCreated is the event name the store sends when a task
// is created. Other event names are acknowledged and ignored.
const WebhookEventTaskCreated = "task.created"

// WebhookEvent is the envelope the task store posts to registered targets.
type WebhookEvent struct {
	EventName string      `json:"event_name"`
	Time      time.Time   `json:"time"`
	Data      WebhookData `json:"data"`
}

// WebhookData carries the event subject.
type WebhookData struct {
	Task Task `json:"task"`
}
