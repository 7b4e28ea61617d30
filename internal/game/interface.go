package game

import (
	"context"

	"telegram-bot-framework/internal/handler"
	"telegram-bot-framework/pkg/telegram"
)

// UseCase forwards score calls from game pages to the Bot API.
type UseCase interface {
	// SetScore records score for the player in token. Scores that are not
	// an improvement are accepted silently.
	SetScore(ctx context.Context, token string, score int) error
	// GetHighScores returns the high score table around the player.
	GetHighScores(ctx context.Context, token string) ([]telegram.GameHighScore, error)
	// FindGameHandler looks up the handler registered for shortName.
	FindGameHandler(shortName string) (handler.GameHandler, bool)
}
