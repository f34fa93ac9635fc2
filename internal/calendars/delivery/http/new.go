package http

import (
	"github.com/gin-gonic/gin"

	"multi-calendar-sync/internal/calendars"
	"multi-calendar-sync/pkg/log"
)

// Handler is the public interface for the calendars HTTP delivery layer.
type Handler interface {
	GetCalendars(c *gin.Context)
	CreateEvent(c *gin.Context)
	DeleteEvent(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc calendars.UseCase
}

// New creates a new HTTP handler for the calendars domain.
func New(l log.Logger, uc calendars.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
