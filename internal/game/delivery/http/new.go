package http

import (
	"github.com/gin-gonic/gin"

	"telegram-bot-framework/internal/game"
	"telegram-bot-framework/pkg/log"
)

// MinPlayerTokenLength rejects ids too short to be a player token before
// any decryption is attempted.
const MinPlayerTokenLength = 20

// Handler serves the scores URL of each game.
type Handler interface {
	GetScores(shortName string) gin.HandlerFunc
	SetScore(shortName string) gin.HandlerFunc
}

type handler struct {
	l  log.Logger
	uc game.UseCase
}

func New(l log.Logger, uc game.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
