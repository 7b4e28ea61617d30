package sample

import (
	"context"
	"fmt"
	"strings"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/handler"
	"telegram-bot-framework/internal/model"
	pkgLog "telegram-bot-framework/pkg/log"
	"telegram-bot-framework/pkg/telegram"
)

func hasText(u telegram.Update) bool {
	return u.Message != nil && u.Message.Chat != nil && u.Message.Text != ""
}

// NewLogger logs every update and lets the chain continue.
func NewLogger(l pkgLog.Logger) handler.Handler {
	return handler.Func{
		Match: func(bot.Bot, telegram.Update) bool { return true },
		Action: func(ctx context.Context, _ bot.Bot, u telegram.Update) (model.HandlingResult, error) {
			l.Debugf(ctx, "sample.Logger: update %d (%s)", u.UpdateID, UpdateKind(u))
			return model.Continue, nil
		},
	}
}

// NewSayHello greets the sender of any text message.
func NewSayHello() handler.Handler {
	return handler.Func{
		Match: func(_ bot.Bot, u telegram.Update) bool { return hasText(u) },
		Action: func(ctx context.Context, b bot.Bot, u telegram.Update) (model.HandlingResult, error) {
			name := "there"
			if u.Message.From != nil && u.Message.From.FirstName != "" {
				name = u.Message.From.FirstName
			}
			if err := b.Client().SendMessage(ctx, u.Message.Chat.ID, "Hello, "+name); err != nil {
				return model.Continue, err
			}
			return model.Continue, nil
		},
	}
}

// NewEchoCommand replies to "/echo <text>" with the text.
func NewEchoCommand() *handler.Command {
	return handler.NewCommand("echo", func(ctx context.Context, b bot.Bot, u telegram.Update, args handler.CommandArgs) (model.HandlingResult, error) {
		reply := args.ArgsInput
		if reply == "" {
			reply = "Echo What?"
		}

		err := b.Client().SendMessageWithMode(ctx, telegram.SendMessageRequest{
			ChatID:           u.Message.Chat.ID,
			Text:             reply,
			ReplyToMessageID: u.Message.MessageID,
		})
		if err != nil {
			return model.Continue, err
		}
		return model.Handled, nil
	})
}

// NewTextEcho quotes any text message back to the sender.
func NewTextEcho() handler.Handler {
	return handler.Func{
		Match: func(_ bot.Bot, u telegram.Update) bool { return hasText(u) },
		Action: func(ctx context.Context, b bot.Bot, u telegram.Update) (model.HandlingResult, error) {
			quoted := strings.ReplaceAll(u.Message.Text, "`", "'")
			quoted = strings.ReplaceAll(quoted, "\n", "`\n`")

			err := b.Client().SendMessageWithMode(ctx, telegram.SendMessageRequest{
				ChatID:           u.Message.Chat.ID,
				Text:             fmt.Sprintf("You said:\n`%s`", quoted),
				ParseMode:        "Markdown",
				ReplyToMessageID: u.Message.MessageID,
			})
			if err != nil {
				return model.Continue, err
			}
			return model.Handled, nil
		},
	}
}

// NewPhotoForwarder sends a received photo back in its largest size.
func NewPhotoForwarder() handler.Handler {
	return handler.Func{
		Match: func(_ bot.Bot, u telegram.Update) bool {
			return u.Message != nil && u.Message.Chat != nil && len(u.Message.Photo) > 0
		},
		Action: func(ctx context.Context, b bot.Bot, u telegram.Update) (model.HandlingResult, error) {
			largest := u.Message.Photo[0]
			for _, p := range u.Message.Photo[1:] {
				if p.Width*p.Height > largest.Width*largest.Height {
					largest = p
				}
			}

			err := b.Client().SendPhoto(ctx, telegram.SendPhotoRequest{
				ChatID:  u.Message.Chat.ID,
				Photo:   largest.FileID,
				Caption: u.Message.Caption,
			})
			if err != nil {
				return model.Continue, err
			}
			return model.Handled, nil
		},
	}
}

// NewPlayCommand sends a game message: "/play snake", or the default game
// for a bare "/play".
func NewPlayCommand(defaultGame string) *handler.Command {
	return handler.NewCommand("play", func(ctx context.Context, b bot.Bot, u telegram.Update, args handler.CommandArgs) (model.HandlingResult, error) {
		shortName := defaultGame
		if args.ArgsInput != "" {
			shortName = strings.Fields(args.ArgsInput)[0]
		}

		game, err := bot.FindGame(b.Options().Games, shortName)
		if err != nil {
			return model.Continue, err
		}

		if err := b.Client().SendGame(ctx, u.Message.Chat.ID, game.ShortName); err != nil {
			return model.Continue, err
		}
		return model.Handled, nil
	})
}
