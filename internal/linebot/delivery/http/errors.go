package http

import (
	"net/http"

	pkgErrors "chatbot-srv/pkg/errors"
)

var (
	errInvalidSignature = pkgErrors.NewHTTPError(http.StatusForbidden, "Invalid signature")
	errInvalidJSON      = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid JSON")
)
