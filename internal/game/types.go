package game

import (
	"fmt"
	"strings"

	"telegram-bot-framework/pkg/telegram"
)

// PlayerID addresses the game message a player launched the game from.
// It holds either InlineMessageID or the ChatID and MessageID pair.
type PlayerID struct {
	UserID          int64
	InlineMessageID string
	ChatID          int64
	MessageID       int64
}

// IsInline reports whether the game was sent through inline mode.
func (p PlayerID) IsInline() bool {
	return p.InlineMessageID != ""
}

func (p PlayerID) String() string {
	if p.IsInline() {
		return fmt.Sprintf("%d%c%s", p.UserID, separator, p.InlineMessageID)
	}
	return fmt.Sprintf("%d%c%d%c%d", p.UserID, separator, p.ChatID, separator, p.MessageID)
}

// Validate checks that exactly one addressing shape is set.
func (p PlayerID) Validate() error {
	if p.IsInline() {
		if p.ChatID != 0 || p.MessageID != 0 {
			return fmt.Errorf("%w: both inline and chat message ids are set", ErrInvalidPlayerID)
		}
		if strings.ContainsRune(p.InlineMessageID, separator) {
			return fmt.Errorf("%w: inline message id contains %q", ErrInvalidPlayerID, separator)
		}
		return nil
	}
	if p.ChatID == 0 || p.MessageID == 0 {
		return fmt.Errorf("%w: no message to address", ErrInvalidPlayerID)
	}
	return nil
}

// PlayerIDFromCallback builds the identity of the player who pressed a
// game's Play button.
func PlayerIDFromCallback(cq *telegram.CallbackQuery) (PlayerID, error) {
	if cq == nil {
		return PlayerID{}, fmt.Errorf("%w: no callback query", ErrInvalidPlayerID)
	}

	id := PlayerID{UserID: cq.From.ID}
	switch {
	case cq.InlineMessageID != "":
		id.InlineMessageID = cq.InlineMessageID
	case cq.Message != nil && cq.Message.Chat != nil && cq.Message.MessageID != 0:
		id.ChatID = cq.Message.Chat.ID
		id.MessageID = cq.Message.MessageID
	}

	if err := id.Validate(); err != nil {
		return PlayerID{}, err
	}
	return id, nil
}

// SetScoreReq is the body a game page posts to the scores URL.
type SetScoreReq struct {
	PlayerID string `json:"playerId" binding:"required"`
	Score    int    `json:"score"`
}
