package usecase

import (
	"time"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/handler"
	"telegram-bot-framework/internal/updates"
	"telegram-bot-framework/internal/updates/repository"
	pkgLog "telegram-bot-framework/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	bot      bot.Instance
	registry *handler.Registry
	repo     repository.OffsetRepository
	poll     updates.PollOptions

	// Written by Init only. The cursor has a single writer, the poll loop.
	initialized bool
	webhookURL  string
	offset      int64

	after func(d time.Duration) <-chan time.Time
}

// New creates the update manager for b.
func New(
	l pkgLog.Logger,
	b bot.Instance,
	registry *handler.Registry,
	repo repository.OffsetRepository,
	poll updates.PollOptions,
) updates.UseCase {
	return &implUseCase{
		l:        l,
		bot:      b,
		registry: registry,
		repo:     repo,
		poll:     poll.WithDefaults(),
		after:    time.After,
	}
}

func (uc *implUseCase) WebhookURL() string {
	return uc.webhookURL
}

func (uc *implUseCase) Offset() int64 {
	return uc.offset
}
