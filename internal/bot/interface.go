package bot

import (
	"context"

	"telegram-bot-framework/pkg/telegram"
)

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks telegram-bot-framework/internal/bot Client

// Client is the Bot API surface the dispatcher and handlers consume.
type Client interface {
	GetMe(ctx context.Context) (telegram.User, error)
	GetUpdates(ctx context.Context, req telegram.GetUpdatesRequest) ([]telegram.Update, error)
	SetWebhook(ctx context.Context, req telegram.SetWebhookRequest) error
	DeleteWebhook(ctx context.Context) error
	AnswerCallbackQuery(ctx context.Context, req telegram.AnswerCallbackQueryRequest) error
	SetGameScore(ctx context.Context, req telegram.SetGameScoreRequest) error
	GetGameHighScores(ctx context.Context, req telegram.GetGameHighScoresRequest) ([]telegram.GameHighScore, error)
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, req telegram.SendMessageRequest) error
	SendPhoto(ctx context.Context, req telegram.SendPhotoRequest) error
	SendGame(ctx context.Context, chatID int64, shortName string) error
}

var _ Client = (*telegram.Bot)(nil)

// Bot is what a handler sees of the bot it runs for.
type Bot interface {
	// User is the bot's own identity. Zero until the dispatcher is initialized.
	User() telegram.User
	Options() Options
	Client() Client
}

// Hooks receive the updates the handler chain did not process.
type Hooks interface {
	// OnUnmatched is called when no handler accepted the update.
	OnUnmatched(ctx context.Context, u telegram.Update) error
	// OnFault is called when a handler failed while processing the update.
	OnFault(ctx context.Context, u telegram.Update, err error) error
}

// Instance is a concrete bot the dispatcher can drive.
type Instance interface {
	Bot
	Hooks
	SetUser(u telegram.User)
}
