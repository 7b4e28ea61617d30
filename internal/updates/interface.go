package updates

import (
	"context"

	"telegram-bot-framework/internal/model"
	"telegram-bot-framework/pkg/telegram"
)

// UseCase drives one bot: it routes updates through the handler chain and
// manages how updates are delivered.
type UseCase interface {
	// Init fetches the bot identity and resolves the webhook URL. Calling it
	// again is a no-op.
	Init(ctx context.Context) error

	// HandleUpdate routes u through the matching handlers. Handler failures
	// go to the bot's OnFault hook and are not returned; only a failing hook
	// yields an error.
	HandleUpdate(ctx context.Context, u telegram.Update) error

	// SetMode disables the webhook for polling or registers it for webhook
	// delivery.
	SetMode(ctx context.Context, mode model.DeliveryMode) error

	// PollOnce fetches and dispatches a single batch, returning its size.
	PollOnce(ctx context.Context) (int, error)

	// Run polls until ctx is cancelled. A failing fetch is returned.
	Run(ctx context.Context) error

	// WebhookURL is the resolved webhook URL, empty when none is configured.
	WebhookURL() string

	// Offset is the next update id to fetch.
	Offset() int64
}
