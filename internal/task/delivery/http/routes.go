package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	quickadd := rg.Group("/quickadd")
	{
		quickadd.POST("/preview", h.Preview)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.POST("/:id/enrich", h.Enrich)
	}
}
