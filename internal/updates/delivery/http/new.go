package http

import (
	"github.com/gin-gonic/gin"

	"telegram-bot-framework/internal/updates"
	"telegram-bot-framework/pkg/log"
)

// Handler is the webhook endpoint Telegram posts updates to.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc updates.UseCase
}

// New creates the webhook HTTP handler.
func New(l log.Logger, uc updates.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
