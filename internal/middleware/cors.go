package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"multi-calendar-sync/internal/model"
)

// Cors returns the CORS policy for the API. Development allows any origin
// so local frontends can hit the consent and batch endpoints; production
// is restricted to the configured redirect host.
func (m Middleware) Cors() gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if m.cfg.Environment.Name == string(model.EnvironmentProduction) {
		corsCfg.AllowOrigins = []string{m.cfg.Google.RedirectURL}
	} else {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}

	return cors.New(corsCfg)
}
