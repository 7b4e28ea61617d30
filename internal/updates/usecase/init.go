package usecase

import (
	"context"
	"fmt"

	"telegram-bot-framework/internal/bot"
)

// Init validates the options, fetches the bot identity and restores the
// stored cursor.
func (uc *implUseCase) Init(ctx context.Context) error {
	if uc.initialized {
		return nil
	}

	opts := uc.bot.Options()
	if err := opts.Validate(); err != nil {
		return err
	}

	me, err := uc.bot.Client().GetMe(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "updates.usecase.Init GetMe: %v", err)
		return fmt.Errorf("getMe: %w", err)
	}
	uc.bot.SetUser(me)

	if opts.WebhookURL != "" {
		uc.webhookURL = bot.ResolveURL(opts.WebhookURL, me.Username, opts.APIToken)
	}

	offset, err := uc.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load offset: %w", err)
	}
	uc.offset = offset

	uc.initialized = true
	uc.l.Infof(ctx, "updates.usecase.Init: bot @%s (id=%d) ready, offset=%d", me.Username, me.ID, offset)
	return nil
}
