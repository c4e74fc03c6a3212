package jwt

import "time"

const (
	// MinSecretKeyLen is the minimum length for HS256 secret key.
	MinSecretKeyLen = 32
	// defaultTTL applies when Config.TTL is zero.
	defaultTTL = 8 * time.Hour
)
