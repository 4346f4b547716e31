package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"teamcity-notifier/internal/middleware"
	"teamcity-notifier/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)
	srv.gin.Use(mw.Recovery(), mw.Trace())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Environment mode: production")
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "Environment mode: %s (request logging on)", srv.environment)
	}
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

	if srv.webhookHandler != nil {
		srv.gin.POST(srv.webhookRoute, srv.webhookHandler.HandleTeamCityWebhook)
		srv.l.Infof(ctx, "TeamCity webhook route registered at POST %s", srv.webhookRoute)
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping TeamCity webhook route")
	}

	if srv.previewHandler != nil {
		test := srv.gin.Group("/test")
		test.POST("/render", srv.previewHandler.HandleRender)
		test.GET("/health", srv.previewHandler.HandleHealthCheck)
		srv.l.Infof(ctx, "Preview routes registered under /test")
	}
}
