package http

import (
	"encoding/json"
	"io"

	pkgLine "chatbot-srv/pkg/line"

	"github.com/gin-gonic/gin"
)

// processWebhookRequest verifies the signature over the raw body before decoding it.
func (h *handler) processWebhookRequest(c *gin.Context) (pkgLine.WebhookPayload, error) {
	var payload pkgLine.WebhookPayload

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return payload, errInvalidJSON
	}

	if h.cfg.VerifySignature && !pkgLine.VerifySignature(body, c.GetHeader(pkgLine.SignatureHeader), h.cfg.ChannelSecret) {
		return payload, errInvalidSignature
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return payload, errInvalidJSON
	}
	return payload, nil
}
