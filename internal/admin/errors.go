package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("admin: invalid username or password")
	ErrLoginDisabled      = errors.New("admin: login is not configured")
)
