package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// foldKey normalizes a name for case-insensitive matching. Unicode case
// folding keeps Cyrillic names comparable, which ASCII lowercasing would
// miss.
func foldKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// resolveProject maps a project name to its store ID. A miss is reported,
// not an error: the task then simply stays in its current project.
func (uc *implUseCase) resolveProject(ctx context.Context, name string) (int64, bool) {
	key := foldKey(name)
	if id, ok := uc.projects.Get(key); ok {
		return id, true
	}

	list, err := uc.store.ListProjects(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "resolver: project lookup for %q failed: %v", name, err)
		return 0, false
	}
	for _, p := range list {
		uc.projects.Add(foldKey(p.Title), p.ID)
	}

	if id, ok := uc.projects.Get(key); ok {
		return id, true
	}
	return 0, false
}

// resolveLabel maps a label name to its store ID, creating the label when
// the store does not have it yet.
func (uc *implUseCase) resolveLabel(ctx context.Context, name string) (int64, error) {
	key := foldKey(name)
	if id, ok := uc.labels.Get(key); ok {
		return id, nil
	}

	list, err := uc.store.ListLabels(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list labels: %w", err)
	}
	for _, lb := range list {
		uc.labels.Add(foldKey(lb.Title), lb.ID)
	}
	if id, ok := uc.labels.Get(key); ok {
		return id, nil
	}

	created, err := uc.store.CreateLabel(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to create label: %w", err)
	}
	uc.labels.Add(foldKey(created.Title), created.ID)
	return created.ID, nil
}
