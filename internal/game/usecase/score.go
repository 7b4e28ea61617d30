package usecase

import (
	"context"
	"errors"

	"telegram-bot-framework/internal/handler"
	"telegram-bot-framework/pkg/telegram"
)

func (uc *implUseCase) SetScore(ctx context.Context, token string, score int) error {
	id, err := uc.codec.Decode(token)
	if err != nil {
		return err
	}

	req := telegram.SetGameScoreRequest{UserID: id.UserID, Score: score}
	if id.IsInline() {
		req.InlineMessageID = id.InlineMessageID
	} else {
		req.ChatID = id.ChatID
		req.MessageID = id.MessageID
	}

	err = uc.bot.Client().SetGameScore(ctx, req)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, telegram.ErrScoreInvalid):
		uc.l.Debugf(ctx, "game.usecase.SetScore: invalid score %d for player %s", score, id)
		return nil
	case errors.Is(err, telegram.ErrScoreNotModified):
		uc.l.Debugf(ctx, "game.usecase.SetScore: score %d not modified for player %s", score, id)
		return nil
	default:
		uc.l.Errorf(ctx, "game.usecase.SetScore SetGameScore: %v", err)
		return err
	}
}

func (uc *implUseCase) GetHighScores(ctx context.Context, token string) ([]telegram.GameHighScore, error) {
	id, err := uc.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	req := telegram.GetGameHighScoresRequest{UserID: id.UserID}
	if id.IsInline() {
		req.InlineMessageID = id.InlineMessageID
	} else {
		req.ChatID = id.ChatID
		req.MessageID = id.MessageID
	}

	scores, err := uc.bot.Client().GetGameHighScores(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "game.usecase.GetHighScores GetGameHighScores: %v", err)
		return nil, err
	}
	return scores, nil
}

func (uc *implUseCase) FindGameHandler(shortName string) (handler.GameHandler, bool) {
	return uc.registry.FindGameHandler(shortName)
}
