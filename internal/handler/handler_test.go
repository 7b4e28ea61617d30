package handler_test

import (
	"context"
	"errors"
	"testing"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/handler"
	"telegram-bot-framework/internal/model"
	"telegram-bot-framework/pkg/telegram"
)

type fakeBot struct {
	user telegram.User
	opts bot.Options
}

func (b *fakeBot) User() telegram.User  { return b.user }
func (b *fakeBot) Options() bot.Options { return b.opts }
func (b *fakeBot) Client() bot.Client   { return nil }

type fakeGame struct {
	name  string
	bound bot.GameOptions
}

func (g *fakeGame) ShortName() string { return g.name }
func (g *fakeGame) CanHandle(b bot.Bot, u telegram.Update) bool {
	return u.CallbackQuery != nil && u.CallbackQuery.GameShortName == g.name
}
func (g *fakeGame) Handle(ctx context.Context, b bot.Bot, u telegram.Update) (model.HandlingResult, error) {
	return model.Handled, nil
}
func (g *fakeGame) WithOptions(opts bot.GameOptions) handler.Handler {
	return &fakeGame{name: g.name, bound: opts}
}

func textUpdate(text string) telegram.Update {
	return telegram.Update{
		UpdateID: 1,
		Message:  &telegram.Message{MessageID: 10, Chat: &telegram.Chat{ID: 7}, Text: text},
	}
}

func always(result model.HandlingResult) handler.Func {
	return handler.Func{
		Match: func(bot.Bot, telegram.Update) bool { return true },
		Action: func(context.Context, bot.Bot, telegram.Update) (model.HandlingResult, error) {
			return result, nil
		},
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("keeps order", func(t *testing.T) {
		a, b := always(model.Continue), always(model.Handled)
		r, err := handler.NewRegistry(a, b)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Len() != 2 {
			t.Fatalf("expected 2 handlers, got %d", r.Len())
		}
		hs := r.Handlers()
		if _, ok := hs[0].(handler.Func); !ok {
			t.Errorf("unexpected handler type %T", hs[0])
		}
	})

	t.Run("nil handler", func(t *testing.T) {
		_, err := handler.NewRegistry(always(model.Continue), nil)
		if !errors.Is(err, handler.ErrNilHandler) {
			t.Errorf("expected ErrNilHandler, got %v", err)
		}
	})

	t.Run("duplicate game", func(t *testing.T) {
		_, err := handler.NewRegistry(&fakeGame{name: "snake"}, &fakeGame{name: "SNAKE"})
		if !errors.Is(err, handler.ErrDuplicateGameHandler) {
			t.Errorf("expected ErrDuplicateGameHandler, got %v", err)
		}
	})

	t.Run("handlers copy", func(t *testing.T) {
		r, _ := handler.NewRegistry(always(model.Continue))
		hs := r.Handlers()
		hs[0] = nil
		if r.Handlers()[0] == nil {
			t.Errorf("registry was modified through Handlers()")
		}
	})
}

func TestRegistryMatch(t *testing.T) {
	never := handler.Func{Match: func(bot.Bot, telegram.Update) bool { return false }}
	r, err := handler.NewRegistry(always(model.Continue), never, always(model.Handled), handler.Func{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matched := r.Match(&fakeBot{}, textUpdate("hi"))
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	res, _ := matched[1].Handle(context.Background(), &fakeBot{}, textUpdate("hi"))
	if res != model.Handled {
		t.Errorf("matches are out of order")
	}
}

func TestFindGameHandler(t *testing.T) {
	snake := &fakeGame{name: "snake"}
	r, err := handler.NewRegistry(always(model.Continue), snake, &fakeGame{name: "tetris"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, ok := r.FindGameHandler("Snake")
	if !ok || g != snake {
		t.Errorf("expected snake handler, got %v %v", g, ok)
	}

	if _, ok := r.FindGameHandler("pong"); ok {
		t.Errorf("expected pong to not be found")
	}
	if _, ok := r.FindGameHandler("  "); ok {
		t.Errorf("expected blank name to not be found")
	}
}

func TestGameHandlerWithOptions(t *testing.T) {
	snake := &fakeGame{name: "snake"}
	bound := snake.WithOptions(bot.GameOptions{ShortName: "snake", URL: "https://host/snake"})

	if snake.bound.URL != "" {
		t.Errorf("WithOptions modified the receiver")
	}
	if bound.(*fakeGame).bound.URL != "https://host/snake" {
		t.Errorf("bound handler lost its options")
	}
}
