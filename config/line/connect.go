package line

import (
	"chatbot-srv/config"
	"chatbot-srv/pkg/line"
)

// Connect creates the LINE Messaging API client.
// Returns line.ErrAccessTokenRequired when no channel access token is configured.
func Connect(cfg config.LineConfig) (line.ILine, error) {
	return line.New(line.LineConfig{ChannelAccessToken: cfg.ChannelAccessToken})
}
