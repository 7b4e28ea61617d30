package usecase

import (
	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/game"
	"telegram-bot-framework/internal/handler"
	pkgLog "telegram-bot-framework/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	bot      bot.Bot
	registry *handler.Registry
	codec    *game.Codec
}

// New creates the game score bridge for b.
func New(l pkgLog.Logger, b bot.Bot, registry *handler.Registry, codec *game.Codec) game.UseCase {
	return &implUseCase{
		l:        l,
		bot:      b,
		registry: registry,
		codec:    codec,
	}
}
