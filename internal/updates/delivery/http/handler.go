package http

import (
	"github.com/gin-gonic/gin"

	"telegram-bot-framework/pkg/response"
	"telegram-bot-framework/pkg/telegram"
)

// HandleWebhook godoc
// @Summary     Receive a Telegram update
// @Description Dispatches one update to the bot's handlers. Handler failures are reported to the bot and still answered with 200.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-Telegram-Bot-Api-Secret-Token header string false "Secret token set with setWebhook"
// @Param       body body telegram.Update true "Update"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Malformed update"
// @Failure     401 {object} response.Resp "Secret token mismatch"
// @Failure     500 {object} response.Resp "Bot hook failed"
// @Router      /{webhook_path} [POST]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update telegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Warnf(ctx, "updates.delivery.http.HandleWebhook: failed to parse update: %v", err)
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.HandleUpdate(ctx, update); err != nil {
		h.l.Errorf(ctx, "updates.delivery.http.HandleWebhook: update %d: %v", update.UpdateID, err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, nil)
}
