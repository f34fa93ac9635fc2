package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit throttles the whole API with a single token bucket. The batch
// endpoints multiply each request into N Google API calls, so the limit is
// on our inbound rate, not per client.
func (m Middleware) RateLimit() gin.HandlerFunc {
	perMin := m.cfg.HTTPServer.RateLimitPerMin
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too Many Requests",
			})
			return
		}
		c.Next()
	}
}
