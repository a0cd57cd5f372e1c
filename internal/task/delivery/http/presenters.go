package http

import (
	"fmt"
	"time"

	"taskmagic/internal/quickadd"
	"taskmagic/internal/task"
)

// --- Request DTOs ---

type previewReq struct {
	Text string `json:"text" binding:"required"`
	Now  string `json:"now"  binding:"omitempty"` // RFC3339, defaults to server time
}

func (r previewReq) toInput() (task.PreviewInput, error) {
	in := task.PreviewInput{Text: r.Text}
	if r.Now != "" {
		now, err := time.Parse(time.RFC3339, r.Now)
		if err != nil {
			return in, fmt.Errorf("invalid now, expected RFC3339: %w", err)
		}
		in.Now = now.UTC()
	}
	return in, nil
}

// --- Response DTOs ---

type previewResp struct {
	Match bool            `json:"match"`
	Patch *quickadd.Patch `json:"patch"` // null when nothing was extracted
}

func (h *handler) newPreviewResp(out task.PreviewOutput) previewResp {
	return previewResp{
		Match: out.Patch != nil,
		Patch: out.Patch,
	}
}

type enrichResp struct {
	TaskID       int64           `json:"task_id"`
	Applied      bool            `json:"applied"`
	SkipReason   string          `json:"skip_reason,omitempty"`
	Patch        *quickadd.Patch `json:"patch,omitempty"`
	ProjectID    int64           `json:"project_id,omitempty"`
	LabelIDs     []int64         `json:"label_ids,omitempty"`
	FailedLabels []string        `json:"failed_labels,omitempty"`
	CalendarLink string          `json:"calendar_link,omitempty"`
}

func (h *handler) newEnrichResp(res task.EnrichResult) enrichResp {
	return enrichResp{
		TaskID:       res.TaskID,
		Applied:      res.Applied,
		SkipReason:   res.SkipReason,
		Patch:        res.Patch,
		ProjectID:    res.ProjectID,
		LabelIDs:     res.LabelIDs,
		FailedLabels: res.FailedLabels,
		CalendarLink: res.CalendarLink,
	}
}
