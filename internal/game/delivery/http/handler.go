package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"telegram-bot-framework/internal/game"
	"telegram-bot-framework/pkg/response"
)

// GetScores godoc
// @Summary     Get high scores
// @Description Returns the high score table for the game message the player token points at.
// @Tags        Game
// @Produce     json
// @Param       id query string true "Player token"
// @Success     200 {array}  telegram.GameHighScore
// @Failure     400 {object} response.Resp "Missing or invalid player token"
// @Failure     404 {object} response.Resp "Game not found"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /{scores_path} [GET]
func (h *handler) GetScores(shortName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if _, ok := h.uc.FindGameHandler(shortName); !ok {
			response.NotFound(c, fmt.Sprintf("game %q not found", shortName))
			return
		}

		token := c.Query("id")
		if len(token) < MinPlayerTokenLength {
			response.Error(c, game.ErrDecode, nil)
			return
		}

		scores, err := h.uc.GetHighScores(ctx, token)
		if err != nil {
			h.mapError(c, "GetHighScores", err)
			return
		}

		c.JSON(http.StatusOK, scores)
	}
}

// SetScore godoc
// @Summary     Submit a score
// @Description Sets the player's score. Scores that do not beat the current one are accepted silently.
// @Tags        Game
// @Accept      json
// @Produce     json
// @Param       body body game.SetScoreReq true "Player token and score"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Malformed body or invalid player token"
// @Failure     404 {object} response.Resp "Game not found"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /{scores_path} [POST]
func (h *handler) SetScore(shortName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if _, ok := h.uc.FindGameHandler(shortName); !ok {
			response.NotFound(c, fmt.Sprintf("game %q not found", shortName))
			return
		}

		var req game.SetScoreReq
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err, nil)
			return
		}
		if len(req.PlayerID) < MinPlayerTokenLength {
			response.Error(c, game.ErrDecode, nil)
			return
		}

		if err := h.uc.SetScore(ctx, req.PlayerID, req.Score); err != nil {
			h.mapError(c, "SetScore", err)
			return
		}

		response.Created(c, nil)
	}
}

func (h *handler) mapError(c *gin.Context, op string, err error) {
	if errors.Is(err, game.ErrDecode) {
		h.l.Warnf(c.Request.Context(), "game.delivery.http.%s: %v", op, err)
		response.Error(c, game.ErrDecode, nil)
		return
	}
	h.l.Errorf(c.Request.Context(), "game.delivery.http.%s: %v", op, err)
	response.InternalError(c, err)
}
