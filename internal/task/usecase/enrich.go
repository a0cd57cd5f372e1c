package usecase

import (
	"context"
	"fmt"

	"taskmagic/internal/model"
	"taskmagic/internal/quickadd"
	"taskmagic/internal/task"
	"taskmagic/internal/task/repository"
	"taskmagic/pkg/gcalendar"
)

// EnrichCreated runs the quick-add pipeline for a task that just appeared
// in the store. The already-scheduled guard is always on for this path.
func (uc *implUseCase) EnrichCreated(ctx context.Context, t model.Task) (task.EnrichResult, error) {
	return uc.enrich(ctx, t, false)
}

// EnrichTask re-runs enrichment for an existing task. Force bypasses the
// already-scheduled guard.
func (uc *implUseCase) EnrichTask(ctx context.Context, input task.EnrichTaskInput) (task.EnrichResult, error) {
	t, err := uc.store.GetTask(ctx, input.TaskID)
	if err != nil {
		return task.EnrichResult{}, fmt.Errorf("failed to fetch task %d: %w", input.TaskID, mapStoreErr(err))
	}
	return uc.enrich(ctx, t, input.Force)
}

func (uc *implUseCase) enrich(ctx context.Context, t model.Task, force bool) (task.EnrichResult, error) {
	res := task.EnrichResult{TaskID: t.ID}

	// Idempotency guard: a task that already carries a due date was either
	// scheduled by hand or enriched on an earlier delivery.
	if t.HasDueDate() && !force {
		res.SkipReason = task.SkipAlreadyScheduled
		uc.l.Infof(ctx, "enrich: task %d skipped: %s", t.ID, res.SkipReason)
		return res, nil
	}

	patch := quickadd.Parse(t.Title, uc.nowFn())
	if patch == nil {
		res.SkipReason = task.SkipNoMarkers
		uc.l.Infof(ctx, "enrich: task %d skipped: %s", t.ID, res.SkipReason)
		return res, nil
	}
	res.Patch = patch

	opt := repository.UpdateTaskOptions{}
	if patch.Title != "" {
		opt.Title = &patch.Title
	}
	if patch.HasDueDate() {
		opt.DueDate = &patch.DueDate
	}
	if patch.Priority > 0 {
		opt.Priority = &patch.Priority
	}
	if patch.HasRecurrence() {
		repeatAfter := patch.RepeatAfter
		repeatMode := int64(patch.RepeatMode)
		opt.RepeatAfter = &repeatAfter
		opt.RepeatMode = &repeatMode
	}
	if patch.ProjectName != "" {
		if id, ok := uc.resolveProject(ctx, patch.ProjectName); ok {
			opt.ProjectID = &id
			res.ProjectID = id
		} else {
			uc.l.Infof(ctx, "enrich: task %d project %q not in store, keeping current project", t.ID, patch.ProjectName)
		}
	}

	updated, err := uc.store.UpdateTask(ctx, t.ID, opt)
	if err != nil {
		return task.EnrichResult{}, fmt.Errorf("failed to apply update to task %d: %w", t.ID, mapStoreErr(err))
	}
	res.Applied = true

	// Labels attach one by one. A failed label is logged and skipped, the
	// update already applied stays.
	for _, name := range patch.Labels {
		labelID, err := uc.resolveLabel(ctx, name)
		if err != nil {
			uc.l.Warnf(ctx, "enrich: task %d label %q failed (skipped): %v", t.ID, name, err)
			res.FailedLabels = append(res.FailedLabels, name)
			continue
		}
		if err := uc.store.AddLabelToTask(ctx, t.ID, labelID); err != nil {
			uc.l.Warnf(ctx, "enrich: task %d attach label %q failed (skipped): %v", t.ID, name, err)
			res.FailedLabels = append(res.FailedLabels, name)
			continue
		}
		res.LabelIDs = append(res.LabelIDs, labelID)
	}

	res.CalendarLink = uc.tryMirrorToCalendar(ctx, updated, patch)

	uc.l.Infof(ctx, "enrich: task %d updated: due=%v priority=%d project=%d labels=%d",
		t.ID, patch.DueDate, patch.Priority, res.ProjectID, len(res.LabelIDs))
	return res, nil
}

// tryMirrorToCalendar creates a Google Calendar event for the applied due
// date. Returns the event HTML link, or empty string when mirroring is
// off or failed. A mirror failure never fails the enrichment.
func (uc *implUseCase) tryMirrorToCalendar(ctx context.Context, t model.Task, patch *quickadd.Patch) string {
	if uc.calendar == nil || !patch.HasDueDate() {
		return ""
	}

	title := t.Title
	if patch.Title != "" {
		title = patch.Title
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: uc.calOpts.CalendarID,
		Summary:    title,
		StartTime:  patch.DueDate,
		EndTime:    patch.DueDate.Add(uc.calOpts.EventDuration),
		Timezone:   "UTC",
	})
	if err != nil {
		uc.l.Warnf(ctx, "enrich: calendar mirror failed for task %d: %v", t.ID, err)
		return ""
	}
	return event.HtmlLink
}
