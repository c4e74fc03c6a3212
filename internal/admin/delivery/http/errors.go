package http

import (
	"errors"
	"net/http"

	"chatbot-srv/internal/admin"
	pkgErrors "chatbot-srv/pkg/errors"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	errInvalidCredentials = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Invalid username or password")
	errLoginDisabled      = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Admin login is not configured")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, admin.ErrInvalidCredentials):
		return errInvalidCredentials
	case errors.Is(err, admin.ErrLoginDisabled):
		return errLoginDisabled
	default:
		return err
	}
}
