package admin

import "time"

// Config holds the single admin account. PasswordHash is a bcrypt hash.
type Config struct {
	Username     string
	PasswordHash string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Username  string
}
