package http

import (
	"github.com/gin-gonic/gin"

	"telegram-bot-framework/internal/middleware"
)

// RegisterRoutes mounts the webhook at the path of webhookURL and returns
// that path.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware, webhookURL string) (string, error) {
	pattern, path, err := middleware.Route(webhookURL)
	if err != nil {
		return "", err
	}
	r.POST(pattern, mw.ExactPath(path), mw.SecretToken(), mw.RateLimit(), h.HandleWebhook)
	return path, nil
}
