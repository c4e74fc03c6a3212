package http

import (
	"errors"
	"net/http"

	"chatbot-srv/internal/chatbot"
	"chatbot-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Chat with the assistant
// @Description Send one message and receive the assistant reply. A new conversation id is issued when none is given.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body chatReq true "Message and optional conversation id"
// @Success 200 {object} chatResp
// @Failure 400 {object} response.PublicResp
// @Failure 429 {object} response.PublicResp
// @Failure 500 {object} chatResp
// @Router /chat [post]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "chatbot.delivery.http.Chat: processChatRequest failed: %v", err)
		response.PublicError(c, err)
		return
	}

	o, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, chatbot.ErrMessageRequired) {
			response.PublicError(c, h.mapError(err))
			return
		}
		h.l.Errorf(ctx, "chatbot.delivery.http.Chat: usecase Chat failed: %v", err)
		response.Public(c, http.StatusInternalServerError, newChatErrorResp(o, err))
		return
	}

	response.Public(c, http.StatusOK, newChatResp(o))
}
