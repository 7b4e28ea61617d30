package game_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/bot/mocks"
	"telegram-bot-framework/internal/game"
	"telegram-bot-framework/internal/model"
	"telegram-bot-framework/pkg/telegram"
)

func TestPlayerIDFromCallback(t *testing.T) {
	tests := []struct {
		name    string
		cq      *telegram.CallbackQuery
		want    game.PlayerID
		wantErr bool
	}{
		{
			name: "inline",
			cq:   &telegram.CallbackQuery{From: telegram.User{ID: 5}, InlineMessageID: "AgAAA"},
			want: game.PlayerID{UserID: 5, InlineMessageID: "AgAAA"},
		},
		{
			name: "chat message",
			cq: &telegram.CallbackQuery{
				From:    telegram.User{ID: 5},
				Message: &telegram.Message{MessageID: 9, Chat: &telegram.Chat{ID: -100}},
			},
			want: game.PlayerID{UserID: 5, ChatID: -100, MessageID: 9},
		},
		{name: "no message", cq: &telegram.CallbackQuery{From: telegram.User{ID: 5}}, wantErr: true},
		{name: "nil", cq: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := game.PlayerIDFromCallback(tt.cq)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLaunchURL(t *testing.T) {
	got := game.LaunchURL("https://host/play/snake", "TOKEN", "https://host/bots/foo/games/snake/scores")
	want := "https://host/play/snake#id=TOKEN&gameScoreUrl=https%3A%2F%2Fhost%2Fbots%2Ffoo%2Fgames%2Fsnake%2Fscores"
	if got != want {
		t.Errorf("LaunchURL() = %q, want %q", got, want)
	}
}

func TestStartHandler(t *testing.T) {
	codec := newCodec(t)
	h := game.NewStartHandler("snake", codec)

	update := telegram.Update{
		UpdateID: 1,
		CallbackQuery: &telegram.CallbackQuery{
			ID:              "cb-1",
			From:            telegram.User{ID: 99},
			InlineMessageID: "AgAAAJ8x",
			GameShortName:   "Snake",
		},
	}

	t.Run("matching", func(t *testing.T) {
		if !h.CanHandle(nil, update) {
			t.Errorf("expected case-insensitive match")
		}
		if h.CanHandle(nil, telegram.Update{CallbackQuery: &telegram.CallbackQuery{GameShortName: "tetris"}}) {
			t.Errorf("expected tetris to not match")
		}
		if h.CanHandle(nil, telegram.Update{Message: &telegram.Message{Text: "snake"}}) {
			t.Errorf("expected message to not match")
		}
	})

	t.Run("unbound", func(t *testing.T) {
		if _, err := h.Handle(context.Background(), nil, update); !errors.Is(err, game.ErrNotBound) {
			t.Errorf("expected ErrNotBound, got %v", err)
		}
	})

	t.Run("answers with launch url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		b := bot.NewBase(bot.Options{}, client)

		bound := h.WithOptions(bot.GameOptions{
			ShortName: "snake",
			URL:       "https://host/play/snake",
			ScoresURL: "https://host/bots/foo/games/snake/scores",
		})

		var answered telegram.AnswerCallbackQueryRequest
		client.EXPECT().AnswerCallbackQuery(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req telegram.AnswerCallbackQueryRequest) error {
				answered = req
				return nil
			})

		res, err := bound.Handle(context.Background(), b, update)
		if err != nil {
			t.Fatalf("Handle: %v", err)
		}
		if res != model.Handled {
			t.Errorf("expected Handled, got %v", res)
		}
		if answered.CallbackQueryID != "cb-1" {
			t.Errorf("CallbackQueryID = %q", answered.CallbackQueryID)
		}

		base, fragment, ok := strings.Cut(answered.URL, "#")
		if !ok || base != "https://host/play/snake" {
			t.Fatalf("unexpected launch url %q", answered.URL)
		}
		values, err := url.ParseQuery(fragment)
		if err != nil {
			t.Fatalf("fragment: %v", err)
		}
		if values.Get("gameScoreUrl") != "https://host/bots/foo/games/snake/scores" {
			t.Errorf("gameScoreUrl = %q", values.Get("gameScoreUrl"))
		}
		id, err := codec.Decode(values.Get("id"))
		if err != nil {
			t.Fatalf("Decode id: %v", err)
		}
		if id != (game.PlayerID{UserID: 99, InlineMessageID: "AgAAAJ8x"}) {
			t.Errorf("decoded player = %+v", id)
		}
	})

	t.Run("answer failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		b := bot.NewBase(bot.Options{}, client)
		bound := h.WithOptions(bot.GameOptions{ShortName: "snake", URL: "https://host/p", ScoresURL: "https://host/s"})

		client.EXPECT().AnswerCallbackQuery(gomock.Any(), gomock.Any()).Return(errors.New("query too old"))
		if _, err := bound.Handle(context.Background(), b, update); err == nil {
			t.Errorf("expected error")
		}
	})
}
