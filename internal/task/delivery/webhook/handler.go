package webhook

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"taskmagic/internal/model"
	pkgResponse "taskmagic/pkg/response"
)

// processTimeout caps background enrichment so a slow store cannot leak
// goroutines.
const processTimeout = 2 * time.Minute

// HandleVikunjaWebhook processes task store webhook deliveries. Only
// task.created is enriched; the request is acknowledged before any store
// work happens.
func (h *Handler) HandleVikunjaWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Raw body is needed for signature verification
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.BadRequest(c, err, nil)
		return
	}

	// Rate limit before any signature work
	if err := h.security.CheckRateLimit(ExtractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	signature := c.GetHeader("X-Vikunja-Signature")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "webhook: signature verification failed: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	var event model.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.l.Errorf(ctx, "webhook: failed to decode event: %v", err)
		pkgResponse.BadRequest(c, err, nil)
		return
	}

	if event.EventName != model.WebhookEventTaskCreated {
		h.l.Infof(ctx, "webhook: ignoring event %q", event.EventName)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event name"})
		return
	}

	// Process in background to avoid blocking the store's delivery loop
	go h.processAsync(event.Data.Task)

	// Acknowledge immediately
	pkgResponse.Accepted(c)
}

// processAsync runs enrichment outside the request lifecycle.
func (h *Handler) processAsync(t model.Task) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	h.l.Infof(ctx, "webhook: processing task.created for task %d", t.ID)

	res, err := h.uc.EnrichCreated(ctx, t)
	if err != nil {
		h.l.Errorf(ctx, "webhook: enrichment failed for task %d: %v", t.ID, err)
		return
	}

	if !res.Applied {
		h.l.Infof(ctx, "webhook: task %d left untouched: %s", t.ID, res.SkipReason)
		return
	}
	h.l.Infof(ctx, "webhook: task %d enriched", t.ID)
}
