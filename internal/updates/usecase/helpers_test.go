package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/bot/mocks"
	"telegram-bot-framework/internal/handler"
	"telegram-bot-framework/internal/model"
	"telegram-bot-framework/internal/updates"
	"telegram-bot-framework/internal/updates/repository"
	"telegram-bot-framework/internal/updates/repository/memory"
	"telegram-bot-framework/internal/updates/usecase"
	pkgLog "telegram-bot-framework/pkg/log"
	"telegram-bot-framework/pkg/telegram"
)

const testToken = "123456789:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw"

type testBot struct {
	*bot.Base
	unmatched []telegram.Update
	faults    []error
	hookErr   error
}

func (b *testBot) OnUnmatched(ctx context.Context, u telegram.Update) error {
	b.unmatched = append(b.unmatched, u)
	return b.hookErr
}

func (b *testBot) OnFault(ctx context.Context, u telegram.Update, err error) error {
	b.faults = append(b.faults, err)
	return b.hookErr
}

// visitHandler records its name in visits whenever it runs.
type visitHandler struct {
	name     string
	match    bool
	result   model.HandlingResult
	err      error
	panicMsg string
	visits   *[]string
}

func (h *visitHandler) CanHandle(b bot.Bot, u telegram.Update) bool { return h.match }

func (h *visitHandler) Handle(ctx context.Context, b bot.Bot, u telegram.Update) (model.HandlingResult, error) {
	*h.visits = append(*h.visits, h.name)
	if h.panicMsg != "" {
		panic(h.panicMsg)
	}
	return h.result, h.err
}

type gameHandler struct {
	name  string
	bound *[]bot.GameOptions
}

func (g *gameHandler) ShortName() string { return g.name }

func (g *gameHandler) CanHandle(b bot.Bot, u telegram.Update) bool {
	return u.CallbackQuery != nil && u.CallbackQuery.GameShortName == g.name
}

func (g *gameHandler) Handle(ctx context.Context, b bot.Bot, u telegram.Update) (model.HandlingResult, error) {
	return model.Continue, errors.New("unbound game handler invoked")
}

func (g *gameHandler) WithOptions(opts bot.GameOptions) handler.Handler {
	return handler.Func{
		Match: g.CanHandle,
		Action: func(context.Context, bot.Bot, telegram.Update) (model.HandlingResult, error) {
			*g.bound = append(*g.bound, opts)
			return model.Handled, nil
		},
	}
}

type fixture struct {
	uc     updates.UseCase
	client *mocks.MockClient
	bot    *testBot
	repo   repository.OffsetRepository
}

func newFixture(t *testing.T, opts bot.Options, poll updates.PollOptions, handlers ...handler.Handler) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	if opts.APIToken == "" {
		opts.APIToken = testToken
	}
	b := &testBot{Base: bot.NewBase(opts, client)}

	registry, err := handler.NewRegistry(handlers...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	repo := memory.New()
	return fixture{
		uc:     usecase.New(pkgLog.NewNop(), b, registry, repo, poll),
		client: client,
		bot:    b,
		repo:   repo,
	}
}

func (f fixture) init(t *testing.T) {
	t.Helper()
	f.client.EXPECT().GetMe(gomock.Any()).Return(telegram.User{ID: 1, IsBot: true, Username: "foo"}, nil)
	if err := f.uc.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
}

func textUpdate(id int64, text string) telegram.Update {
	return telegram.Update{
		UpdateID: id,
		Message:  &telegram.Message{MessageID: id, Chat: &telegram.Chat{ID: 7}, Text: text},
	}
}

func batchOf(ids ...int64) []telegram.Update {
	out := make([]telegram.Update, 0, len(ids))
	for _, id := range ids {
		out = append(out, textUpdate(id, "hi"))
	}
	return out
}
