package http

import (
	"github.com/gin-gonic/gin"

	"multi-calendar-sync/internal/auth"
	"multi-calendar-sync/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Authorize(c *gin.Context)
	Callback(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for the OAuth flow.
func New(l log.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
