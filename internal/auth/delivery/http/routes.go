package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the OAuth consent surface.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	google := rg.Group("/google")
	{
		google.GET("", h.Authorize)
		google.GET("/redirect", h.Callback)
	}
}
