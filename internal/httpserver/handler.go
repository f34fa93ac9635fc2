package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "multi-calendar-sync/internal/auth/delivery/http"
	calendarsHTTP "multi-calendar-sync/internal/calendars/delivery/http"
	"multi-calendar-sync/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l, srv.cfg)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Cors())
	srv.gin.Use(mw.RateLimit())

	srv.l.Infof(context.Background(), "CORS mode: %s", srv.environment)
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

// registerDomainRoutes registers all domain routes. The paths live at the
// root (not under /api/v1) to keep the wire contract of the original
// service intact for existing clients.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	root := srv.gin.Group("")

	authHTTP.RegisterRoutes(root, srv.authHandler)
	srv.l.Infof(ctx, "OAuth routes registered at GET /google, GET /google/redirect")

	calendarsHTTP.RegisterRoutes(root, srv.calendarsHandler)
	srv.l.Infof(ctx, "Calendar routes registered at POST /get_calendars, POST /create_event, DELETE /delete_event")
}
