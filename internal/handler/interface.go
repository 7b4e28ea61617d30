package handler

import (
	"context"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/model"
	"telegram-bot-framework/pkg/telegram"
)

// Handler may claim and process an update.
type Handler interface {
	// CanHandle reports whether the handler wants the update. It must not
	// have side effects.
	CanHandle(b bot.Bot, u telegram.Update) bool
	// Handle processes the update. Returning model.Handled stops the chain.
	Handle(ctx context.Context, b bot.Bot, u telegram.Update) (model.HandlingResult, error)
}

// GameHandler is a Handler that launches a configured HTML5 game.
type GameHandler interface {
	Handler
	ShortName() string
	// WithOptions returns a handler bound to the resolved game options.
	// The receiver is left unchanged.
	WithOptions(opts bot.GameOptions) Handler
}

// Func adapts a predicate and an action into a Handler.
type Func struct {
	Match  func(b bot.Bot, u telegram.Update) bool
	Action func(ctx context.Context, b bot.Bot, u telegram.Update) (model.HandlingResult, error)
}

func (f Func) CanHandle(b bot.Bot, u telegram.Update) bool {
	return f.Match != nil && f.Match(b, u)
}

func (f Func) Handle(ctx context.Context, b bot.Bot, u telegram.Update) (model.HandlingResult, error) {
	return f.Action(ctx, b, u)
}
