package http

import (
	"chatbot-srv/internal/admin"
	"chatbot-srv/pkg/scope"
)

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() admin.LoginInput {
	return admin.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}

type loginResp struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresAt int64  `json:"expires_at"`
	Username  string `json:"username"`
}

func newLoginResp(o admin.LoginOutput) loginResp {
	return loginResp{
		Token:     o.Token,
		TokenType: "Bearer",
		ExpiresAt: o.ExpiresAt.Unix(),
		Username:  o.Username,
	}
}

type meResp struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func newMeResp(p scope.Payload) meResp {
	return meResp{UserID: p.UserID, Username: p.Username, Role: p.Role}
}
