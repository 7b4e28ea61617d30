package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// GetMe returns basic information about the bot.
func (b *Bot) GetMe(ctx context.Context) (User, error) {
	var u User
	err := b.callJSON(ctx, "getMe", nil, &u)
	return u, err
}

// GetUpdates long-polls for updates newer than req.Offset.
func (b *Bot) GetUpdates(ctx context.Context, req GetUpdatesRequest) ([]Update, error) {
	var updates []Update
	if err := b.callJSON(ctx, "getUpdates", req, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// SetWebhook registers the webhook URL with Telegram. When a certificate is
// given the request is sent as multipart/form-data.
func (b *Bot) SetWebhook(ctx context.Context, req SetWebhookRequest) error {
	if len(req.Certificate) == 0 {
		return b.callJSON(ctx, "setWebhook", req, nil)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("url", req.URL); err != nil {
		return fmt.Errorf("failed to build webhook form: %w", err)
	}
	if req.SecretToken != "" {
		if err := w.WriteField("secret_token", req.SecretToken); err != nil {
			return fmt.Errorf("failed to build webhook form: %w", err)
		}
	}
	part, err := w.CreateFormFile("certificate", "certificate.pem")
	if err != nil {
		return fmt.Errorf("failed to build webhook form: %w", err)
	}
	if _, err := part.Write(req.Certificate); err != nil {
		return fmt.Errorf("failed to build webhook form: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to build webhook form: %w", err)
	}

	return b.call(ctx, "setWebhook", w.FormDataContentType(), &buf, nil)
}

// DeleteWebhook removes the webhook integration. Telegram treats it as a
// no-op when no webhook is set.
func (b *Bot) DeleteWebhook(ctx context.Context) error {
	return b.callJSON(ctx, "deleteWebhook", nil, nil)
}

// AnswerCallbackQuery answers a callback query, optionally with a URL to open.
func (b *Bot) AnswerCallbackQuery(ctx context.Context, req AnswerCallbackQueryRequest) error {
	return b.callJSON(ctx, "answerCallbackQuery", req, nil)
}

// SetGameScore sets the score of a user in a game message.
func (b *Bot) SetGameScore(ctx context.Context, req SetGameScoreRequest) error {
	return b.callJSON(ctx, "setGameScore", req, nil)
}

// GetGameHighScores returns the high score table around the given user.
func (b *Bot) GetGameHighScores(ctx context.Context, req GetGameHighScoresRequest) ([]GameHighScore, error) {
	var scores []GameHighScore
	if err := b.callJSON(ctx, "getGameHighScores", req, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, SendMessageRequest{ChatID: chatID, Text: text})
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown") and reply target.
func (b *Bot) SendMessageWithMode(ctx context.Context, req SendMessageRequest) error {
	return b.callJSON(ctx, "sendMessage", req, nil)
}

// SendPhoto re-sends a photo by file id.
func (b *Bot) SendPhoto(ctx context.Context, req SendPhotoRequest) error {
	return b.callJSON(ctx, "sendPhoto", req, nil)
}

// SendGame sends a game message to a chat.
func (b *Bot) SendGame(ctx context.Context, chatID int64, shortName string) error {
	return b.callJSON(ctx, "sendGame", SendGameRequest{ChatID: chatID, GameShortName: shortName}, nil)
}

func (b *Bot) callJSON(ctx context.Context, method string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", method, err)
		}
		body = bytes.NewReader(raw)
	}
	return b.call(ctx, method, "application/json", body, out)
}

func (b *Bot) call(ctx context.Context, method, contentType string, body io.Reader, out any) error {
	endpoint := fmt.Sprintf("%s/%s", b.apiURL, method)

	httpMethod := http.MethodGet
	if body != nil {
		httpMethod = http.MethodPost
	}
	req, err := http.NewRequestWithContext(ctx, httpMethod, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %s", method, b.redact(err.Error()))
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		// The request URL embeds the token.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = b.redact(urlErr.URL)
		}
		return fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", method, err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("telegram %s API error %d: %s", method, resp.StatusCode, string(raw))
	}
	if !apiResp.OK {
		code := apiResp.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		return newAPIError(method, code, apiResp.Description)
	}

	if out == nil || len(apiResp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(apiResp.Result, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", method, err)
	}
	return nil
}
