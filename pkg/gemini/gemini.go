package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GenerateContent calls models/{model}:generateContent.
func (g *geminiImpl) GenerateContent(ctx context.Context, req Request) (Response, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	body, statusCode, err := g.httpClient.Post(ctx, url, req, nil)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if statusCode != http.StatusOK {
		return Response{}, newAPIError(statusCode, body)
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return resp, nil
}

func (g *geminiImpl) GenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     g.temperature,
		MaxOutputTokens: g.maxOutputTokens,
	}
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: "Unknown error", Body: string(body)}
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		apiErr.Message = env.Error.Message
		apiErr.Status = env.Error.Status
	}
	return apiErr
}
