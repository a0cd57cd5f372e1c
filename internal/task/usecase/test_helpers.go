package usecase

import (
	"context"
	"time"

	"taskmagic/internal/model"
	"taskmagic/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Mock task store for testing. Counters record what enrichment touched.
type mockStore struct {
	tasks    map[int64]model.Task
	projects []model.Project
	labels   []model.Label

	updates      []repository.UpdateTaskOptions
	attached     [][2]int64 // {taskID, labelID}
	created      []string
	projectLists int
	labelLists   int

	failGet    bool
	failUpdate bool
	failLabels bool
	failCreate bool
	failAttach bool
}

func (m *mockStore) GetTask(ctx context.Context, id int64) (model.Task, error) {
	if m.failGet {
		return model.Task{}, repository.ErrUnavailable
	}
	t, ok := m.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (m *mockStore) UpdateTask(ctx context.Context, id int64, opt repository.UpdateTaskOptions) (model.Task, error) {
	if m.failUpdate {
		return model.Task{}, repository.ErrUnavailable
	}
	m.updates = append(m.updates, opt)

	t := m.tasks[id]
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.DueDate != nil {
		t.DueDate = *opt.DueDate
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.ProjectID != nil {
		t.ProjectID = *opt.ProjectID
	}
	if opt.RepeatAfter != nil {
		t.RepeatAfter = *opt.RepeatAfter
	}
	if opt.RepeatMode != nil {
		t.RepeatMode = *opt.RepeatMode
	}
	m.tasks[id] = t
	return t, nil
}

func (m *mockStore) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (m *mockStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	m.projectLists++
	return m.projects, nil
}

func (m *mockStore) ListLabels(ctx context.Context) ([]model.Label, error) {
	m.labelLists++
	if m.failLabels {
		return nil, repository.ErrUnavailable
	}
	return m.labels, nil
}

func (m *mockStore) CreateLabel(ctx context.Context, title string) (model.Label, error) {
	if m.failCreate {
		return model.Label{}, repository.ErrUnavailable
	}
	lb := model.Label{ID: int64(100 + len(m.created)), Title: title}
	m.created = append(m.created, title)
	m.labels = append(m.labels, lb)
	return lb, nil
}

func (m *mockStore) AddLabelToTask(ctx context.Context, taskID, labelID int64) error {
	if m.failAttach {
		return repository.ErrUnavailable
	}
	m.attached = append(m.attached, [2]int64{taskID, labelID})
	return nil
}

// testNow pins the clock used by enrichment tests. 2024-01-10 is a
// Wednesday.
var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestUseCase(store *mockStore) *implUseCase {
	uc := New(&mockLogger{}, store, nil, CalendarOptions{}, time.Minute)
	uc.nowFn = func() time.Time { return testNow }
	return uc
}
