package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"telegram-bot-framework/pkg/response"
)

const HeaderSecretToken = "X-Telegram-Bot-Api-Secret-Token"

// SecretToken checks the header Telegram attaches to webhook calls when the
// webhook was registered with a secret token.
func (mw Middleware) SecretToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.secretToken == "" {
			c.Next()
			return
		}

		got := c.GetHeader(HeaderSecretToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(mw.secretToken)) != 1 {
			mw.l.Warnf(c.Request.Context(), "middleware.SecretToken: rejected webhook call from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
