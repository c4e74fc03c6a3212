package http

import (
	"errors"
	"net/http"

	"chatbot-srv/internal/chatbot"
	pkgErrors "chatbot-srv/pkg/errors"
)

var (
	errInvalidJSON     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid JSON")
	errMessageRequired = pkgErrors.NewHTTPError(http.StatusBadRequest, "Message is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chatbot.ErrMessageRequired):
		return errMessageRequired
	default:
		return err
	}
}
