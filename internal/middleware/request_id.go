package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"intent-router/pkg/log"
)

// HeaderRequestID carries the request id to and from clients.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns every request a uuid (or reuses the client-supplied one)
// and threads it through the request context so pkg/log can attach it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
