package vikunja

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"taskmagic/internal/model"
	"taskmagic/internal/task/repository"
)

// Client is the HTTP wrapper for the Vikunja REST API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	maxAttempts int
	backoff     time.Duration
}

// NewClient creates a new Vikunja HTTP client. The API token rides on
// every request through an oauth2 static token source.
func NewClient(ctx context.Context, baseURL, token string, timeout time.Duration) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	httpClient := oauth2.NewClient(ctx, src)
	httpClient.Timeout = timeout

	return &Client{
		baseURL:     baseURL,
		httpClient:  httpClient,
		maxAttempts: 3,
		backoff:     2 * time.Second,
	}
}

// GetTask fetches a single task by its numeric ID.
func (c *Client) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	path := fmt.Sprintf("/api/v1/tasks/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &task); err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return &task, nil
}

// UpdateTask applies a partial update to a task. Only fields set in opt
// are serialized.
func (c *Client) UpdateTask(ctx context.Context, id int64, opt repository.UpdateTaskOptions) (*model.Task, error) {
	payload := updateTaskPayload{
		Title:       opt.Title,
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
		ProjectID:   opt.ProjectID,
		RepeatAfter: opt.RepeatAfter,
		RepeatMode:  opt.RepeatMode,
	}

	var task model.Task
	path := fmt.Sprintf("/api/v1/tasks/%d", id)
	if err := c.doJSON(ctx, http.MethodPost, path, payload, &task); err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return &task, nil
}

// ListTasks fetches one page of tasks.
func (c *Client) ListTasks(ctx context.Context, page, perPage int) ([]model.Task, error) {
	var tasks []model.Task
	path := fmt.Sprintf("/api/v1/tasks/all?page=%d&per_page=%d", page, perPage)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListProjects fetches one page of projects.
func (c *Client) ListProjects(ctx context.Context, page, perPage int) ([]model.Project, error) {
	var projects []model.Project
	path := fmt.Sprintf("/api/v1/projects?page=%d&per_page=%d", page, perPage)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &projects); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListLabels fetches one page of labels.
func (c *Client) ListLabels(ctx context.Context, page, perPage int) ([]model.Label, error) {
	var labels []model.Label
	path := fmt.Sprintf("/api/v1/labels?page=%d&per_page=%d", page, perPage)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &labels); err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return labels, nil
}

// CreateLabel creates a label via PUT /api/v1/labels.
func (c *Client) CreateLabel(ctx context.Context, title string) (*model.Label, error) {
	var label model.Label
	if err := c.doJSON(ctx, http.MethodPut, "/api/v1/labels", createLabelPayload{Title: title}, &label); err != nil {
		return nil, fmt.Errorf("failed to create label %q: %w", title, err)
	}
	return &label, nil
}

// AddLabelToTask attaches an existing label to a task.
func (c *Client) AddLabelToTask(ctx context.Context, taskID, labelID int64) error {
	path := fmt.Sprintf("/api/v1/tasks/%d/labels", taskID)
	if err := c.doJSON(ctx, http.MethodPut, path, addLabelPayload{LabelID: labelID}, nil); err != nil {
		return fmt.Errorf("failed to add label %d to task %d: %w", labelID, taskID, err)
	}
	return nil
}

// doJSON sends one API request, retrying network errors and 5xx responses
// with doubling backoff. 4xx responses are permanent and surface
// immediately. out may be nil when the response body is not needed.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	backoff := c.backoff
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return fmt.Errorf("failed to build request: %w", err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		retryable, err := decodeResponse(resp, out)
		if err == nil {
			return nil
		}
		if !retryable {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: %s %s failed after %d attempts: %v", repository.ErrUnavailable, method, path, c.maxAttempts, lastErr)
}

// decodeResponse consumes the response body and reports whether a failure
// is worth retrying.
func decodeResponse(resp *http.Response, out interface{}) (retryable bool, err error) {
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		if out == nil {
			io.Copy(io.Discard, resp.Body)
			return false, nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("failed to decode response: %w", err)
		}
		return false, nil

	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return false, repository.ErrNotFound

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		io.Copy(io.Discard, resp.Body)
		return false, repository.ErrUnauthorized

	case resp.StatusCode >= http.StatusInternalServerError:
		raw, _ := io.ReadAll(resp.Body)
		return true, fmt.Errorf("vikunja API error %d: %s", resp.StatusCode, string(raw))

	default:
		raw, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("vikunja API error %d: %s", resp.StatusCode, string(raw))
	}
}
