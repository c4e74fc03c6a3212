package model

import "time"

// AuthorizedUser is an identifier allowed to request quotations.
type AuthorizedUser struct {
	UserID    string
	Note      string
	CreatedAt time.Time
}
