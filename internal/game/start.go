package game

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"telegram-bot-framework/internal/bot"
	"telegram-bot-framework/internal/handler"
	"telegram-bot-framework/internal/model"
	"telegram-bot-framework/pkg/telegram"
)

// StartHandler answers a game's Play button with the launch URL. The URL
// carries the player token and the scores URL in its fragment.
type StartHandler struct {
	shortName string
	codec     *Codec
	opts      *bot.GameOptions
}

var _ handler.GameHandler = (*StartHandler)(nil)

func NewStartHandler(shortName string, codec *Codec) *StartHandler {
	return &StartHandler{shortName: shortName, codec: codec}
}

func (h *StartHandler) ShortName() string {
	return h.shortName
}

func (h *StartHandler) WithOptions(opts bot.GameOptions) handler.Handler {
	return &StartHandler{shortName: h.shortName, codec: h.codec, opts: &opts}
}

func (h *StartHandler) CanHandle(b bot.Bot, u telegram.Update) bool {
	return u.CallbackQuery != nil && strings.EqualFold(u.CallbackQuery.GameShortName, h.shortName)
}

func (h *StartHandler) Handle(ctx context.Context, b bot.Bot, u telegram.Update) (model.HandlingResult, error) {
	if h.opts == nil {
		return model.Continue, fmt.Errorf("%w: %q", ErrNotBound, h.shortName)
	}

	id, err := PlayerIDFromCallback(u.CallbackQuery)
	if err != nil {
		return model.Continue, err
	}

	token, err := h.codec.Encode(id)
	if err != nil {
		return model.Continue, err
	}

	err = b.Client().AnswerCallbackQuery(ctx, telegram.AnswerCallbackQueryRequest{
		CallbackQueryID: u.CallbackQuery.ID,
		URL:             LaunchURL(h.opts.URL, token, h.opts.ScoresURL),
	})
	if err != nil {
		return model.Continue, fmt.Errorf("answerCallbackQuery: %w", err)
	}
	return model.Handled, nil
}

// LaunchURL formats gameURL#id=<token>&gameScoreUrl=<escaped scoresURL>.
// token is expected to be URL-safe already.
func LaunchURL(gameURL, token, scoresURL string) string {
	return fmt.Sprintf("%s#id=%s&gameScoreUrl=%s", gameURL, token, url.QueryEscape(scoresURL))
}
