package sample

import (
	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/game"
	"telegram-bot-framework/internal/handler"
	pkgLog "telegram-bot-framework/pkg/log"
)

// NewRegistry wires the sample handlers. Each configured game gets a
// start handler; /play is only offered when a game exists.
func NewRegistry(l pkgLog.Logger, codec *game.Codec, games []bot.GameOptions) (*handler.Registry, error) {
	handlers := []handler.Handler{
		NewLogger(l),
		NewEchoCommand(),
	}

	if len(games) > 0 {
		handlers = append(handlers, NewPlayCommand(games[0].ShortName))
	}
	for _, g := range games {
		handlers = append(handlers, game.NewStartHandler(g.ShortName, codec))
	}

	handlers = append(handlers,
		NewPhotoForwarder(),
		NewSayHello(),
		NewTextEcho(),
	)

	return handler.NewRegistry(handlers...)
}
