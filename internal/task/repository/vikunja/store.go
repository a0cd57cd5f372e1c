package vikunja

import (
	"context"

	"taskmagic/internal/model"
	"taskmagic/internal/task/repository"
	pkgLog "taskmagic/pkg/log"
)

// defaultPerPage is the page size used when the caller does not pick one.
const defaultPerPage = 50

type implStore struct {
	client *Client
	l      pkgLog.Logger
}

// New creates a task store backed by the Vikunja REST API.
func New(client *Client, l pkgLog.Logger) repository.TaskStore {
	return &implStore{
		client: client,
		l:      l,
	}
}

func (s *implStore) GetTask(ctx context.Context, id int64) (model.Task, error) {
	task, err := s.client.GetTask(ctx, id)
	if err != nil {
		s.l.Errorf(ctx, "vikunja store: failed to get task %d: %v", id, err)
		return model.Task{}, err
	}
	return *task, nil
}

func (s *implStore) UpdateTask(ctx context.Context, id int64, opt repository.UpdateTaskOptions) (model.Task, error) {
	task, err := s.client.UpdateTask(ctx, id, opt)
	if err != nil {
		s.l.Errorf(ctx, "vikunja store: failed to update task %d: %v", id, err)
		return model.Task{}, err
	}
	return *task, nil
}

func (s *implStore) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	page := opt.Page
	if page == 0 {
		page = 1
	}
	perPage := opt.PerPage
	if perPage == 0 {
		perPage = defaultPerPage
	}
	return s.client.ListTasks(ctx, page, perPage)
}

// ListProjects walks every page of the projects endpoint.
func (s *implStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	var all []model.Project
	for page := 1; ; page++ {
		projects, err := s.client.ListProjects(ctx, page, defaultPerPage)
		if err != nil {
			s.l.Errorf(ctx, "vikunja store: failed to list projects page %d: %v", page, err)
			return nil, err
		}
		all = append(all, projects...)
		if len(projects) < defaultPerPage {
			return all, nil
		}
	}
}

// ListLabels walks every page of the labels endpoint.
func (s *implStore) ListLabels(ctx context.Context) ([]model.Label, error) {
	var all []model.Label
	for page := 1; ; page++ {
		labels, err := s.client.ListLabels(ctx, page, defaultPerPage)
		if err != nil {
			s.l.Errorf(ctx, "vikunja store: failed to list labels page %d: %v", page, err)
			return nil, err
		}
		all = append(all, labels...)
		if len(labels) < defaultPerPage {
			return all, nil
		}
	}
}

func (s *implStore) CreateLabel(ctx context.Context, title string) (model.Label, error) {
	label, err := s.client.CreateLabel(ctx, title)
	if err != nil {
		s.l.Errorf(ctx, "vikunja store: failed to create label %q: %v", title, err)
		return model.Label{}, err
	}
	return *label, nil
}

func (s *implStore) AddLabelToTask(ctx context.Context, taskID, labelID int64) error {
	if err := s.client.AddLabelToTask(ctx, taskID, labelID); err != nil {
		s.l.Errorf(ctx, "vikunja store: failed to add label %d to task %d: %v", labelID, taskID, err)
		return err
	}
	return nil
}
