package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taskmagic/internal/middleware"
	taskHTTP "taskmagic/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.RequestLogger())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Vikunja webhook intake
	if srv.webhookHandler != nil {
		api.POST("/webhooks/vikunja", srv.webhookHandler.HandleVikunjaWebhook)
		srv.l.Infof(ctx, "Vikunja webhook route registered at POST /api/v1/webhooks/vikunja")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping Vikunja webhook route")
	}

	// Quick-add preview and on-demand enrichment
	if srv.taskHandler != nil {
		taskHTTP.RegisterRoutes(api, srv.taskHandler)
		srv.l.Infof(ctx, "Task routes registered under /api/v1")
	} else {
		srv.l.Infof(ctx, "Task handler not configured, skipping task routes")
	}

	return nil
}
