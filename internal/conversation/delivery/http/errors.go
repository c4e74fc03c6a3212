package http

import (
	"errors"
	"net/http"

	"chatbot-srv/internal/conversation"
	pkgErrors "chatbot-srv/pkg/errors"
)

var (
	errConversationNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Conversation not found")
	errConversationIDEmpty  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Conversation ID is required")
	errWrongQuery           = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrConversationNotFound):
		return errConversationNotFound
	case errors.Is(err, conversation.ErrConversationIDEmpty):
		return errConversationIDEmpty
	default:
		return err
	}
}
