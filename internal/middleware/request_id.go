package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderXRequestID is set on every response; incoming values are trusted
// so callers can correlate retried batch requests.
const HeaderXRequestID = "X-Request-ID"

// RequestID tags each request with an identifier for log correlation.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(HeaderXRequestID, requestID)
		c.Writer.Header().Set(HeaderXRequestID, requestID)
		c.Next()
	}
}
