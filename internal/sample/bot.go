package sample

import (
	"context"

	"telegram-bot-framework/internal/bot"
	pkgLog "telegram-bot-framework/pkg/log"
	"telegram-bot-framework/pkg/telegram"
)

// EchoBot is the bot served by cmd/bot. Updates nobody handled and handler
// failures are only logged.
type EchoBot struct {
	*bot.Base
	l pkgLog.Logger
}

var _ bot.Instance = (*EchoBot)(nil)

func NewEchoBot(l pkgLog.Logger, opts bot.Options, client bot.Client) *EchoBot {
	return &EchoBot{Base: bot.NewBase(opts, client), l: l}
}

func (b *EchoBot) OnUnmatched(ctx context.Context, u telegram.Update) error {
	b.l.Infof(ctx, "sample.OnUnmatched: update %d (%s) not handled", u.UpdateID, UpdateKind(u))
	return nil
}

func (b *EchoBot) OnFault(ctx context.Context, u telegram.Update, err error) error {
	b.l.Errorf(ctx, "sample.OnFault: update %d (%s): %v", u.UpdateID, UpdateKind(u), err)
	return nil
}

// UpdateKind names the populated part of u.
func UpdateKind(u telegram.Update) string {
	switch {
	case u.Message != nil:
		return "message"
	case u.EditedMessage != nil:
		return "edited_message"
	case u.ChannelPost != nil:
		return "channel_post"
	case u.CallbackQuery != nil:
		return "callback_query"
	case u.InlineQuery != nil:
		return "inline_query"
	}
	return "unknown"
}
