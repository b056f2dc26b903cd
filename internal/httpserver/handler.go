package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	checklistHTTP "memos-widget/internal/checklist/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.requestLogger())
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
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	checklistHTTP.RegisterRoutes(srv.gin.Group("/api/v1/checklist"), srv.checklistHandler)
	srv.l.Infof(ctx, "Checklist routes registered at /api/v1/checklist")

	if srv.webhookHandler != nil {
		srv.gin.POST("/webhook/memos", srv.webhookHandler.HandleMemosWebhook)
		srv.l.Infof(ctx, "Memos webhook route registered at POST /webhook/memos")
	} else {
		srv.l.Infof(ctx, "Webhook disabled, skipping Memos webhook route")
	}
}
