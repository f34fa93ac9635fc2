package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the batch calendar surface. Paths are part of
// the preserved external contract and registered at the root.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/get_calendars", h.GetCalendars)
	rg.POST("/create_event", h.CreateEvent)
	rg.DELETE("/delete_event", h.DeleteEvent)
}
