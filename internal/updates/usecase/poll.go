package usecase

import (
	"context"
	"fmt"

	"telegram-bot-framework/internal/model"
	"telegram-bot-framework/internal/updates"
	"telegram-bot-framework/pkg/telegram"
)

func (uc *implUseCase) SetMode(ctx context.Context, mode model.DeliveryMode) error {
	if !uc.initialized {
		return updates.ErrNotInitialized
	}

	switch mode {
	case model.ModePolling:
		if err := uc.bot.Client().DeleteWebhook(ctx); err != nil {
			uc.l.Errorf(ctx, "updates.usecase.SetMode DeleteWebhook: %v", err)
			return fmt.Errorf("deleteWebhook: %w", err)
		}
		uc.l.Infof(ctx, "updates.usecase.SetMode: webhook disabled, polling")
		return nil
	case model.ModeWebhook:
		return uc.enableWebhook(ctx)
	default:
		return fmt.Errorf("%w: %q", updates.ErrUnknownMode, mode)
	}
}

// PollOnce fetches one batch after the cursor and dispatches it in order.
// Dispatch is detached from ctx so a started batch always completes.
func (uc *implUseCase) PollOnce(ctx context.Context) (int, error) {
	if !uc.initialized {
		return 0, updates.ErrNotInitialized
	}

	batch, err := uc.bot.Client().GetUpdates(ctx, telegram.GetUpdatesRequest{
		Offset:         uc.offset,
		Limit:          uc.poll.Limit,
		Timeout:        int(uc.poll.Timeout.Seconds()),
		AllowedUpdates: uc.poll.AllowedUpdates,
	})
	if err != nil {
		return 0, err
	}
	if len(batch) == 0 {
		return 0, nil
	}

	dispatchCtx := context.WithoutCancel(ctx)
	next := uc.offset
	for _, u := range batch {
		if err := uc.HandleUpdate(dispatchCtx, u); err != nil {
			uc.l.Errorf(dispatchCtx, "updates.usecase.PollOnce HandleUpdate %d: %v", u.UpdateID, err)
		}
		if u.UpdateID+1 > next {
			next = u.UpdateID + 1
		}
	}

	if next != uc.offset {
		uc.offset = next
		if err := uc.repo.Save(dispatchCtx, next); err != nil {
			uc.l.Warnf(dispatchCtx, "updates.usecase.PollOnce Save offset %d: %v", next, err)
		}
	}

	return len(batch), nil
}

// Run drains pending updates, sleeps for the poll interval and repeats
// until ctx is done.
func (uc *implUseCase) Run(ctx context.Context) error {
	if !uc.initialized {
		return updates.ErrNotInitialized
	}

	uc.l.Infof(ctx, "updates.usecase.Run: polling from offset %d", uc.offset)
	for {
		for {
			if ctx.Err() != nil {
				return uc.stopped(ctx)
			}

			n, err := uc.PollOnce(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return uc.stopped(ctx)
				}
				uc.l.Errorf(ctx, "updates.usecase.Run GetUpdates: %v", err)
				return fmt.Errorf("getUpdates: %w", err)
			}
			if n == 0 {
				break
			}
		}

		select {
		case <-ctx.Done():
			return uc.stopped(ctx)
		case <-uc.after(uc.poll.Interval):
		}
	}
}

func (uc *implUseCase) stopped(ctx context.Context) error {
	uc.l.Infof(context.WithoutCancel(ctx), "updates.usecase.Run: stopped at offset %d", uc.offset)
	return nil
}
