package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskmagic/internal/task"
)

// processPreviewReq binds and validates the preview request body.
func (h *handler) processPreviewReq(c *gin.Context) (task.PreviewInput, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.PreviewInput{}, err
	}
	return req.toInput()
}

// processEnrichReq reads the task ID URI param and the force query flag.
func (h *handler) processEnrichReq(c *gin.Context) (task.EnrichTaskInput, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return task.EnrichTaskInput{}, fmt.Errorf("invalid task id %q", c.Param("id"))
	}
	return task.EnrichTaskInput{
		TaskID: id,
		Force:  c.Query("force") == "true",
	}, nil
}
