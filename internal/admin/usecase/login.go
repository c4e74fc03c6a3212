package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"

	"chatbot-srv/internal/admin"
	"chatbot-srv/pkg/scope"

	"golang.org/x/crypto/bcrypt"
)

func (uc *implUseCase) Login(ctx context.Context, input admin.LoginInput) (admin.LoginOutput, error) {
	if uc.jwtManager == nil || uc.cfg.Username == "" || uc.cfg.PasswordHash == "" {
		return admin.LoginOutput{}, admin.ErrLoginDisabled
	}

	// Both checks always run so timing does not reveal which one failed.
	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(uc.cfg.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(uc.cfg.PasswordHash), []byte(input.Password))
	if !userOK || passErr != nil {
		uc.l.Warnf(ctx, "admin.usecase.Login: rejected login for %q", input.Username)
		return admin.LoginOutput{}, admin.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.jwtManager.CreateToken(scope.Payload{
		UserID:   uc.cfg.Username,
		Username: uc.cfg.Username,
		Role:     scope.RoleAdmin,
	})
	if err != nil {
		uc.l.Errorf(ctx, "admin.usecase.Login: CreateToken failed: %v", err)
		return admin.LoginOutput{}, fmt.Errorf("create token: %w", err)
	}

	return admin.LoginOutput{Token: token, ExpiresAt: expiresAt, Username: uc.cfg.Username}, nil
}
