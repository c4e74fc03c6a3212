package repository

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrFailedToInsert = errors.New("failed to insert")
)
