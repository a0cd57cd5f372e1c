package http

import (
	"github.com/gin-gonic/gin"

	"taskmagic/pkg/response"
)

// Preview godoc
// @Summary     Preview quick-add extraction
// @Description Runs the extraction engine over one line of text and returns the patch it would apply. Nothing is written to the store.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Text to parse, with an optional RFC3339 instant pinning 'now'"
// @Success     200 {object} previewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quickadd/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processPreviewReq(c)
	if err != nil {
		response.BadRequest(c, err, nil)
		return
	}

	output, err := h.uc.Preview(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newPreviewResp(output))
}

// Enrich godoc
// @Summary     Enrich a task by ID
// @Description Fetches the task and runs the same enrichment the webhook path would. Tasks that already carry a due date are skipped unless force is set.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id    path  int    true  "Task ID"
// @Param       force query bool   false "Bypass the already-scheduled guard"
// @Success     200 {object} enrichResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/tasks/{id}/enrich [POST]
func (h *handler) Enrich(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processEnrichReq(c)
	if err != nil {
		response.BadRequest(c, err, nil)
		return
	}

	res, err := h.uc.EnrichTask(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.EnrichTask: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newEnrichResp(res))
}
