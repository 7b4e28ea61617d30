package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"telegram-bot-framework/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags the request context with a request id, reusing the
// caller's X-Request-ID when it is a valid UUID.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
