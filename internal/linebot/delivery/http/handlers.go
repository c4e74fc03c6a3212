package http

import (
	"context"
	"net/http"

	pkgLine "chatbot-srv/pkg/line"
	"chatbot-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary LINE webhook
// @Description Receives LINE Messaging API events. The request is acknowledged before the events are processed.
// @Tags LINE
// @Accept json
// @Param X-Line-Signature header string true "base64 HMAC-SHA256 of the body"
// @Success 200
// @Failure 400 {object} response.PublicResp
// @Failure 403 {object} response.PublicResp
// @Router /webhook/line [post]
func (h *handler) Webhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := h.processWebhookRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "linebot.delivery.http.Webhook: processWebhookRequest failed: %v", err)
		response.PublicError(c, err)
		return
	}

	c.Status(http.StatusOK)

	// LINE times out after 2 seconds, so events outlive the request.
	bg := context.WithoutCancel(ctx)
	h.dispatch(func() { h.process(bg, payload) })
}

func (h *handler) process(ctx context.Context, payload pkgLine.WebhookPayload) {
	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "linebot.delivery.http.process: panic recovered: %v", r)
		}
	}()
	h.uc.Process(ctx, payload)
}
