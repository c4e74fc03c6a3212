package http

import (
	"net/http"

	"chatbot-srv/internal/conversation"
	"chatbot-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Get conversation
// @Description Return a conversation with its active message history
// @Tags Conversation
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} getConversationResp
// @Failure 404 {object} response.PublicResp
// @Router /conversation/{conversation_id} [get]
func (h *handler) GetConversation(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processConversationIDRequest(c)
	if err != nil {
		response.PublicError(c, err)
		return
	}

	o, err := h.uc.GetConversation(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "conversation.delivery.http.GetConversation: usecase GetConversation failed: %v", err)
		response.PublicError(c, h.mapError(err))
		return
	}

	response.Public(c, http.StatusOK, newGetConversationResp(o))
}

// @Summary Clear conversation
// @Description Delete a conversation and all of its messages
// @Tags Conversation
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} clearConversationResp
// @Router /conversation/{conversation_id} [delete]
func (h *handler) ClearConversation(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processConversationIDRequest(c)
	if err != nil {
		response.PublicError(c, err)
		return
	}

	deleted, err := h.uc.ClearConversation(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.ClearConversation: usecase ClearConversation failed: %v", err)
	}

	msg := "Conversation not found"
	if deleted {
		msg = "Conversation cleared"
	}
	response.Public(c, http.StatusOK, clearConversationResp{Success: deleted, Message: msg})
}

// @Summary List paused conversations
// @Description Conversations waiting for a human agent
// @Tags Admin
// @Produce json
// @Security Bearer
// @Success 200 {object} listResp
// @Failure 401 {object} response.Resp
// @Router /admin/conversations/paused [get]
func (h *handler) ListPaused(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newListResp(h.uc.ListPaused(ctx, conversation.DefaultListLimit)))
}

// @Summary List active conversations
// @Description Conversations with activity in the last N days
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param days query int false "Look-back window in days (default 2)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Router /admin/conversations/active [get]
func (h *handler) ListActive(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListActiveRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "conversation.delivery.http.ListActive: processListActiveRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListActive(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.ListActive: usecase ListActive failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListActiveResp(o))
}

// @Summary Pause chatbot
// @Description Hand a conversation over to a human agent
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} stateResp
// @Failure 401 {object} response.Resp
// @Router /admin/conversations/{conversation_id}/pause [post]
func (h *handler) Pause(c *gin.Context) {
	h.setActive(c, false)
}

// @Summary Resume chatbot
// @Description Give a paused conversation back to the chatbot
// @Tags Admin
// @Produce json
// @Security Bearer
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} stateResp
// @Failure 401 {object} response.Resp
// @Router /admin/conversations/{conversation_id}/resume [post]
func (h *handler) Resume(c *gin.Context) {
	h.setActive(c, true)
}

func (h *handler) setActive(c *gin.Context, active bool) {
	ctx := c.Request.Context()

	id, err := h.processConversationIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if active {
		err = h.uc.Resume(ctx, id)
	} else {
		err = h.uc.Pause(ctx, id)
	}
	if err != nil {
		h.l.Errorf(ctx, "conversation.delivery.http.setActive: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, stateResp{ConversationID: id, IsChatbotActive: active})
}
