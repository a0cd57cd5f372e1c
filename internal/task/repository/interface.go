package repository

import (
	"context"

	"taskmagic/internal/model"
)

// TaskStore is the interface for task-store data access operations.
type TaskStore interface {
	GetTask(ctx context.Context, id int64) (model.Task, error)
	UpdateTask(ctx context.Context, id int64, opt UpdateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	ListLabels(ctx context.Context) ([]model.Label, error)
	CreateLabel(ctx context.Context, title string) (model.Label, error)
	AddLabelToTask(ctx context.Context, taskID, labelID int64) error
}
