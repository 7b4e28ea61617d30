package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/handler"
	"telegram-bot-framework/internal/model"
	"telegram-bot-framework/internal/updates"
	pkgLog "telegram-bot-framework/pkg/log"
	"telegram-bot-framework/pkg/telegram"
)

func (uc *implUseCase) HandleUpdate(ctx context.Context, u telegram.Update) error {
	if pkgLog.TraceID(ctx) == "" {
		ctx = pkgLog.WithTraceID(ctx, uuid.NewString())
	}

	matched, err := uc.match(u)
	if err != nil {
		uc.l.Warnf(ctx, "updates.usecase.HandleUpdate: filtering update %d failed: %v", u.UpdateID, err)
		return uc.fault(ctx, u, err)
	}
	if len(matched) == 0 {
		uc.l.Debugf(ctx, "updates.usecase.HandleUpdate: no handler for update %d", u.UpdateID)
		if err := safely(func() error { return uc.bot.OnUnmatched(ctx, u) }); err != nil {
			return fmt.Errorf("%w: OnUnmatched: %w", updates.ErrHookFailed, err)
		}
		return nil
	}

	for i, h := range matched {
		result, err := uc.invoke(ctx, h, u)
		if err != nil {
			uc.l.Warnf(ctx, "updates.usecase.HandleUpdate: handler #%d (%T) failed on update %d: %v", i, h, u.UpdateID, err)
			return uc.fault(ctx, u, err)
		}
		if result == model.Handled {
			return nil
		}
	}

	return nil
}

// match runs the CanHandle predicates. A panicking predicate is a fault
// like a panicking action.
func (uc *implUseCase) match(u telegram.Update) (matched []handler.Handler, err error) {
	defer func() {
		if r := recover(); r != nil {
			matched, err = nil, fmt.Errorf("%w: CanHandle: %v", updates.ErrHandlerPanic, r)
		}
	}()
	return uc.registry.Match(uc.bot, u), nil
}

func (uc *implUseCase) fault(ctx context.Context, u telegram.Update, err error) error {
	if hookErr := safely(func() error { return uc.bot.OnFault(ctx, u, err) }); hookErr != nil {
		return fmt.Errorf("%w: OnFault: %w", updates.ErrHookFailed, hookErr)
	}
	return nil
}

func (uc *implUseCase) invoke(ctx context.Context, h handler.Handler, u telegram.Update) (result model.HandlingResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = model.Continue, fmt.Errorf("%w: %v", updates.ErrHandlerPanic, r)
		}
	}()

	if g, ok := h.(handler.GameHandler); ok {
		bound, err := uc.bindGame(g)
		if err != nil {
			return model.Continue, err
		}
		h = bound
	}

	return h.Handle(ctx, uc.bot, u)
}

// bindGame resolves the game's options for this dispatch only. The shared
// configuration is never written.
func (uc *implUseCase) bindGame(g handler.GameHandler) (handler.Handler, error) {
	opts := uc.bot.Options()
	game, err := bot.FindGame(opts.Games, g.ShortName())
	if err != nil {
		return nil, err
	}
	return g.WithOptions(game.Resolve(uc.bot.User().Username, opts.APIToken)), nil
}

func safely(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
