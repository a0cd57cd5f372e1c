package webhook_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"taskmagic/internal/model"
	"taskmagic/internal/task"
	"taskmagic/internal/task/delivery/webhook"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

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

// mockTaskUseCase records enriched tasks; handlers call it from a
// background goroutine, so access is guarded.
type mockTaskUseCase struct {
	mu       sync.Mutex
	enriched []model.Task
	res      task.EnrichResult
	err      error
}

func (m *mockTaskUseCase) EnrichCreated(ctx context.Context, t model.Task) (task.EnrichResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enriched = append(m.enriched, t)
	return m.res, m.err
}

func (m *mockTaskUseCase) EnrichTask(ctx context.Context, input task.EnrichTaskInput) (task.EnrichResult, error) {
	return m.res, m.err
}

func (m *mockTaskUseCase) Preview(ctx context.Context, input task.PreviewInput) (task.PreviewOutput, error) {
	return task.PreviewOutput{}, nil
}

func (m *mockTaskUseCase) enrichedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.enriched)
}

func (m *mockTaskUseCase) lastEnriched() model.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enriched[len(m.enriched)-1]
}

// ── Test Helpers ───────────────────────────────────────────────────────────

const testSecret = "whsec-test"

type testEnv struct {
	engine *gin.Engine
	muc    *mockTaskUseCase
}

func newTestEnv(t *testing.T, cfg webhook.SecurityConfig) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	muc := &mockTaskUseCase{}
	h := webhook.NewHandler(muc, cfg, &mockLogger{})

	engine := gin.New()
	engine.POST("/api/v1/webhooks/vikunja", h.HandleVikunjaWebhook)

	return &testEnv{engine: engine, muc: muc}
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func sendEvent(engine *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/webhooks/vikunja", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Vikunja-Signature", signature)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func taskCreatedBody(t *testing.T, taskID int64, title string) []byte {
	t.Helper()
	event := model.WebhookEvent{
		EventName: model.WebhookEventTaskCreated,
		Time:      time.Now(),
		Data:      model.WebhookData{Task: model.Task{ID: taskID, Title: title}},
	}
	body, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal event: %v", err)
	}
	return body
}

func waitForEnriched(muc *mockTaskUseCase, atLeast int, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) && muc.enrichedCount() < atLeast {
		time.Sleep(20 * time.Millisecond)
	}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_SignedTaskCreated(t *testing.T) {
	env := newTestEnv(t, webhook.SecurityConfig{Secret: testSecret, RateLimitPerMin: 600})

	body := taskCreatedBody(t, 42, "tomorrow call mom")
	w := sendEvent(env.engine, body, sign(testSecret, body))
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}

	waitForEnriched(env.muc, 1, 2*time.Second)
	if env.muc.enrichedCount() != 1 {
		t.Fatalf("expected 1 enriched task, got %d", env.muc.enrichedCount())
	}
	if got := env.muc.lastEnriched(); got.ID != 42 || got.Title != "tomorrow call mom" {
		t.Errorf("unexpected task passed to enrichment: %+v", got)
	}
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	env := newTestEnv(t, webhook.SecurityConfig{Secret: testSecret, RateLimitPerMin: 600})

	body := taskCreatedBody(t, 42, "tomorrow call mom")
	w := sendEvent(env.engine, body, "deadbeef")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if env.muc.enrichedCount() != 0 {
		t.Errorf("enrichment must not run on a bad signature")
	}
}

func TestHandleWebhook_MissingSignature(t *testing.T) {
	env := newTestEnv(t, webhook.SecurityConfig{Secret: testSecret, RateLimitPerMin: 600})

	body := taskCreatedBody(t, 42, "tomorrow call mom")
	w := sendEvent(env.engine, body, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestHandleWebhook_NoSecretSkipsValidation(t *testing.T) {
	env := newTestEnv(t, webhook.SecurityConfig{Secret: "", RateLimitPerMin: 600})

	body := taskCreatedBody(t, 7, "today water plants")
	w := sendEvent(env.engine, body, "")
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", w.Code)
	}

	waitForEnriched(env.muc, 1, 2*time.Second)
	if env.muc.enrichedCount() != 1 {
		t.Errorf("expected enrichment to run in dev mode")
	}
}

func TestHandleWebhook_IgnoresOtherEvents(t *testing.T) {
	env := newTestEnv(t, webhook.SecurityConfig{Secret: testSecret, RateLimitPerMin: 600})

	event := model.WebhookEvent{EventName: "task.updated"}
	body, _ := json.Marshal(event)
	w := sendEvent(env.engine, body, sign(testSecret, body))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	time.Sleep(50 * time.Millisecond)
	if env.muc.enrichedCount() != 0 {
		t.Errorf("ignored events must not be enriched")
	}
}

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env := newTestEnv(t, webhook.SecurityConfig{Secret: testSecret, RateLimitPerMin: 600})

	body := []byte("{bad json")
	w := sendEvent(env.engine, body, sign(testSecret, body))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_RateLimit(t *testing.T) {
	env := newTestEnv(t, webhook.SecurityConfig{Secret: testSecret, RateLimitPerMin: 1})

	body := taskCreatedBody(t, 42, "tomorrow call mom")
	if w := sendEvent(env.engine, body, sign(testSecret, body)); w.Code != http.StatusAccepted {
		t.Fatalf("first request should pass, got %d", w.Code)
	}
	if w := sendEvent(env.engine, body, sign(testSecret, body)); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be limited, got %d", w.Code)
	}
}
