package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"multi-calendar-sync/config"
	authHTTP "multi-calendar-sync/internal/auth/delivery/http"
	calendarsHTTP "multi-calendar-sync/internal/calendars/delivery/http"
	"multi-calendar-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	cfg         *config.Config
	port        int
	mode        string
	environment string

	// OAuth consent flow
	authHandler authHTTP.Handler

	// Batched calendar operations
	calendarsHandler calendarsHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	AppConfig   *config.Config
	Port        int
	Mode        string
	Environment string

	AuthHandler      authHTTP.Handler
	CalendarsHandler calendarsHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		cfg:              cfg.AppConfig,
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		authHandler:      cfg.AuthHandler,
		calendarsHandler: cfg.CalendarsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authHandler == nil {
		return errors.New("auth handler is required")
	}
	if srv.calendarsHandler == nil {
		return errors.New("calendars handler is required")
	}
	return nil
}
