package linebot

import (
	"context"

	pkgLine "chatbot-srv/pkg/line"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process handles every event of one webhook delivery. It is called after the
	// webhook has been acknowledged, so failures are reported to users by push only.
	Process(ctx context.Context, payload pkgLine.WebhookPayload)
}
