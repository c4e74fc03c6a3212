package admin

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Login checks the configured admin credentials and issues a bearer token.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
