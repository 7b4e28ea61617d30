package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"testing"

	"telegram-bot-framework/pkg/telegram"
)

type reply struct {
	status int
	body   string
}

// fakeAPI answers Bot API calls with canned replies and records the last
// request per method.
type fakeAPI struct {
	replies     map[string]reply
	contentType map[string]string
	body        map[string][]byte
	cert        string
}

func newFakeAPI(t *testing.T, replies map[string]reply) (*telegram.Bot, *fakeAPI) {
	t.Helper()
	f := &fakeAPI{replies: replies, contentType: map[string]string{}, body: map[string][]byte{}}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := path.Base(r.URL.Path)
		f.contentType[method] = r.Header.Get("Content-Type")

		if strings.HasPrefix(f.contentType[method], "multipart/form-data") {
			if file, _, err := r.FormFile("certificate"); err == nil {
				raw, _ := io.ReadAll(file)
				f.cert = string(raw)
			}
		} else if r.Body != nil {
			f.body[method], _ = io.ReadAll(r.Body)
		}

		rep, ok := f.replies[method]
		if !ok {
			rep = reply{body: `{"ok": true, "result": true}`}
		}
		if rep.status != 0 {
			w.WriteHeader(rep.status)
		}
		_, _ = w.Write([]byte(rep.body))
	}))
	t.Cleanup(ts.Close)

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	return bot, f
}

func TestBot_GetMe(t *testing.T) {
	bot, _ := newFakeAPI(t, map[string]reply{
		"getMe": {body: `{"ok": true, "result": {"id": 1, "is_bot": true, "first_name": "Echo", "username": "echo_bot"}}`},
	})

	u, err := bot.GetMe(context.Background())
	if err != nil {
		t.Fatalf("GetMe() error = %v", err)
	}
	if u.Username != "echo_bot" || !u.IsBot {
		t.Errorf("user = %+v", u)
	}
}

func TestBot_GetUpdates(t *testing.T) {
	bot, api := newFakeAPI(t, map[string]reply{
		"getUpdates": {body: `{"ok": true, "result": [{"update_id": 10, "message": {"message_id": 1, "chat": {"id": 5, "type": "private"}, "text": "hi"}}]}`},
	})

	got, err := bot.GetUpdates(context.Background(), telegram.GetUpdatesRequest{Offset: 11, Limit: 5, Timeout: 30})
	if err != nil {
		t.Fatalf("GetUpdates() error = %v", err)
	}
	if len(got) != 1 || got[0].UpdateID != 10 || got[0].Message.Text != "hi" {
		t.Errorf("updates = %+v", got)
	}

	var sent telegram.GetUpdatesRequest
	if err := json.Unmarshal(api.body["getUpdates"], &sent); err != nil {
		t.Fatal(err)
	}
	if sent.Offset != 11 || sent.Limit != 5 || sent.Timeout != 30 {
		t.Errorf("request = %+v", sent)
	}
}

func TestBot_APIErrors(t *testing.T) {
	tests := []struct {
		name       string
		rep        reply
		wantCode   int
		wantReason telegram.ErrorReason
	}{
		{
			name:     "error code in body",
			rep:      reply{status: http.StatusUnauthorized, body: `{"ok": false, "error_code": 401, "description": "Unauthorized"}`},
			wantCode: 401,
		},
		{
			name:     "status code fallback",
			rep:      reply{status: http.StatusBadRequest, body: `{"ok": false, "description": "invalid url"}`},
			wantCode: 400,
		},
		{
			name:       "score not modified",
			rep:        reply{status: http.StatusBadRequest, body: `{"ok": false, "error_code": 400, "description": "Bad Request: BOT_SCORE_NOT_MODIFIED"}`},
			wantCode:   400,
			wantReason: telegram.ReasonScoreNotModified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bot, _ := newFakeAPI(t, map[string]reply{"setGameScore": tt.rep})

			err := bot.SetGameScore(context.Background(), telegram.SetGameScoreRequest{UserID: 7, Score: 1, InlineMessageID: "abc"})
			var apiErr *telegram.APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *APIError", err)
			}
			if apiErr.Method != "setGameScore" || apiErr.Code != tt.wantCode || apiErr.Reason != tt.wantReason {
				t.Errorf("APIError = %+v", apiErr)
			}
			if errors.Is(err, telegram.ErrScoreNotModified) != (tt.wantReason == telegram.ReasonScoreNotModified) {
				t.Errorf("errors.Is(ErrScoreNotModified) mismatch for %v", err)
			}
		})
	}
}

func TestBot_NonJSONResponse(t *testing.T) {
	bot, _ := newFakeAPI(t, map[string]reply{"sendMessage": {status: http.StatusBadGateway, body: "<html>bad gateway</html>"}})

	err := bot.SendMessage(context.Background(), 1, "hi")
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("error = %v, want status in message", err)
	}
	var apiErr *telegram.APIError
	if errors.As(err, &apiErr) {
		t.Error("non-JSON reply should not be an APIError")
	}
}

func TestBot_SetWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("json", func(t *testing.T) {
		bot, api := newFakeAPI(t, nil)
		err := bot.SetWebhook(ctx, telegram.SetWebhookRequest{URL: "https://example.com/hook", SecretToken: "s3cret"})
		if err != nil {
			t.Fatalf("SetWebhook() error = %v", err)
		}
		if api.contentType["setWebhook"] != "application/json" {
			t.Errorf("content type = %q", api.contentType["setWebhook"])
		}
		var sent map[string]string
		_ = json.Unmarshal(api.body["setWebhook"], &sent)
		if sent["url"] != "https://example.com/hook" || sent["secret_token"] != "s3cret" {
			t.Errorf("body = %v", sent)
		}
	})

	t.Run("certificate", func(t *testing.T) {
		bot, api := newFakeAPI(t, nil)
		err := bot.SetWebhook(ctx, telegram.SetWebhookRequest{
			URL:         "https://example.com/hook",
			Certificate: []byte("PEM DATA"),
		})
		if err != nil {
			t.Fatalf("SetWebhook() error = %v", err)
		}
		if !strings.HasPrefix(api.contentType["setWebhook"], "multipart/form-data") {
			t.Errorf("content type = %q", api.contentType["setWebhook"])
		}
		if api.cert != "PEM DATA" {
			t.Errorf("certificate = %q", api.cert)
		}
	})
}

func TestBot_Calls(t *testing.T) {
	ctx := context.Background()
	bot, api := newFakeAPI(t, map[string]reply{
		"getGameHighScores": {body: `{"ok": true, "result": [{"position": 1, "user": {"id": 7, "first_name": "A"}, "score": 300}]}`},
	})

	if err := bot.DeleteWebhook(ctx); err != nil {
		t.Errorf("DeleteWebhook() error = %v", err)
	}
	if err := bot.AnswerCallbackQuery(ctx, telegram.AnswerCallbackQueryRequest{CallbackQueryID: "q", URL: "https://g"}); err != nil {
		t.Errorf("AnswerCallbackQuery() error = %v", err)
	}
	if err := bot.SendMessageWithMode(ctx, telegram.SendMessageRequest{ChatID: 5, Text: "*hi*", ParseMode: "Markdown", ReplyToMessageID: 3}); err != nil {
		t.Errorf("SendMessageWithMode() error = %v", err)
	}
	if err := bot.SendPhoto(ctx, telegram.SendPhotoRequest{ChatID: 5, Photo: "file-id"}); err != nil {
		t.Errorf("SendPhoto() error = %v", err)
	}
	if err := bot.SendGame(ctx, 5, "snake"); err != nil {
		t.Errorf("SendGame() error = %v", err)
	}

	scores, err := bot.GetGameHighScores(ctx, telegram.GetGameHighScoresRequest{UserID: 7, InlineMessageID: "abc"})
	if err != nil {
		t.Fatalf("GetGameHighScores() error = %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 300 || scores[0].User.ID != 7 {
		t.Errorf("scores = %+v", scores)
	}

	var game telegram.SendGameRequest
	_ = json.Unmarshal(api.body["sendGame"], &game)
	if game.ChatID != 5 || game.GameShortName != "snake" {
		t.Errorf("sendGame body = %+v", game)
	}
	var msg telegram.SendMessageRequest
	_ = json.Unmarshal(api.body["sendMessage"], &msg)
	if msg.ParseMode != "Markdown" || msg.ReplyToMessageID != 3 {
		t.Errorf("sendMessage body = %+v", msg)
	}
}

func TestBot_Unreachable(t *testing.T) {
	bot := telegram.NewBot("test")
	bot.SetAPIURL("http://127.0.0.1:1")
	if err := bot.SendMessage(context.Background(), 1, "fail"); err == nil {
		t.Error("expected network failure")
	}
}
