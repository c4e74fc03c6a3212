package line

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (c *lineImpl) PushText(ctx context.Context, to, text string) error {
	return c.post(ctx, c.apiBaseURL+"/message/push", pushRequest{
		To:       to,
		Messages: []textMessage{{Type: MessageTypeText, Text: text}},
	})
}

func (c *lineImpl) ShowLoading(ctx context.Context, chatID string, seconds int) error {
	seconds = max(MinLoadingSeconds, min(MaxLoadingSeconds, seconds))
	return c.post(ctx, c.apiBaseURL+"/chat/loading/start", loadingRequest{
		ChatID:         chatID,
		LoadingSeconds: seconds,
	})
}

func (c *lineImpl) Content(ctx context.Context, messageID string) ([]byte, string, error) {
	url := fmt.Sprintf("%s/message/%s/content", c.dataBaseURL, messageID)
	body, status, err := c.httpClient.Get(ctx, url, c.authHeader())
	if err != nil {
		return nil, "", fmt.Errorf("download content %s: %w", messageID, err)
	}
	if status != http.StatusOK {
		return nil, "", fmt.Errorf("%w: content %s: HTTP %d", ErrRequestFailed, messageID, status)
	}
	return body, http.DetectContentType(body), nil
}

func (c *lineImpl) GetProfile(ctx context.Context, userID string) (Profile, error) {
	body, status, err := c.httpClient.Get(ctx, c.apiBaseURL+"/profile/"+userID, c.authHeader())
	if err != nil {
		return Profile{}, fmt.Errorf("get profile %s: %w", userID, err)
	}
	if status != http.StatusOK {
		return Profile{}, fmt.Errorf("%w: profile %s: HTTP %d", ErrRequestFailed, userID, status)
	}
	var p Profile
	if err := json.Unmarshal(body, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

// post accepts any 2xx status.
func (c *lineImpl) post(ctx context.Context, url string, payload any) error {
	body, status, err := c.httpClient.Post(ctx, url, payload, c.authHeader())
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: HTTP %d: %s", ErrRequestFailed, status, string(body))
	}
	return nil
}

func (c *lineImpl) authHeader() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.accessToken}
}
