package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID     = "X-Request-ID"
	contextKeyRequestID = "request_id"
)

// RequestID tags every request with a correlation id, minting one when the
// caller did not send a usable X-Request-ID. The id is echoed on the response
// and stashed in the gin context for the access log and handlers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(headerRequestID))
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextKeyRequestID, id)
		c.Writer.Header().Set(headerRequestID, id)

		c.Next()
	}
}

// RequestIDFrom returns the correlation id RequestID stored on the context,
// or an empty string when the middleware did not run.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(contextKeyRequestID)
}
