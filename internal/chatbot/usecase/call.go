package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"chatbot-srv/internal/chatbot"
	"chatbot-srv/pkg/gemini"
)

// callResult is the outcome of one model call. The variants are textResult,
// functionCallResult and errorResult.
type callResult interface {
	tokens() int
	isCallResult()
}

type textResult struct {
	text       string
	tokensUsed int
}

type functionCallResult struct {
	calls      []gemini.FunctionCall
	tokensUsed int
}

type errorResult struct {
	err        *chatbot.TurnError
	tokensUsed int
}

func (r textResult) tokens() int         { return r.tokensUsed }
func (r functionCallResult) tokens() int { return r.tokensUsed }
func (r errorResult) tokens() int        { return r.tokensUsed }

func (textResult) isCallResult()         {}
func (functionCallResult) isCallResult() {}
func (errorResult) isCallResult()        {}

const (
	msgRateLimitHint   = ". Please wait a moment or upgrade to paid tier for higher limits."
	msgMaxTokensHint   = ". The conversation is too long. Please start a new conversation."
	msgSafetyHint      = ". Content was blocked by safety filters."
	msgRecitationHint  = ". Content was blocked due to recitation concerns."
	msgUnexpectedShape = "Unexpected API response format"
)

// generate calls the model with up to chatbot.MaxAttempts attempts. Only an empty
// STOP response is retried.
func (uc *implUseCase) generate(ctx context.Context, contents []gemini.Content) callResult {
	req := uc.buildRequest(contents)

	var tokens int
	for attempt := 0; attempt < chatbot.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return errorResult{err: turnError(chatbot.ErrModelTransport, "Request failed: "+ctx.Err().Error(), 0), tokensUsed: tokens}
			case <-uc.sleep(uc.retryDelay(attempt)):
			}
		}

		resp, err := uc.gemini.GenerateContent(ctx, req)
		if err != nil {
			uc.l.Errorf(ctx, "chatbot.usecase.generate: GenerateContent failed: %v", err)
			return errorResult{err: classifyCallError(err), tokensUsed: tokens}
		}
		tokens += resp.UsageMetadata.TotalTokenCount

		res, retry := uc.interpret(ctx, resp, tokens)
		if !retry {
			return res
		}
		uc.l.Warnf(ctx, "chatbot.usecase.generate: empty STOP response on attempt %d of %d", attempt+1, chatbot.MaxAttempts)
	}

	return errorResult{
		err:        turnError(chatbot.ErrEmptyStop, "AI returned empty response: "+gemini.FinishReasonStop, 0),
		tokensUsed: tokens,
	}
}

// interpret maps a decoded response to a callResult. retry is true for an empty STOP.
func (uc *implUseCase) interpret(ctx context.Context, resp gemini.Response, tokens int) (callResult, bool) {
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return errorResult{err: turnError(chatbot.ErrPromptBlocked, "Prompt blocked: "+resp.PromptFeedback.BlockReason, 0), tokensUsed: tokens}, false
		}
		uc.logRawResponse(ctx, resp)
		return errorResult{err: turnError(chatbot.ErrUnexpectedFormat, msgUnexpectedShape, 0), tokensUsed: tokens}, false
	}

	cand := resp.Candidates[0]
	if len(cand.Content.Parts) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return errorResult{err: turnError(chatbot.ErrPromptBlocked, "Prompt blocked: "+resp.PromptFeedback.BlockReason, 0), tokensUsed: tokens}, false
		}
		if cand.FinishReason == gemini.FinishReasonStop {
			return nil, true
		}
		return errorResult{err: turnError(chatbot.ErrEmptyResponse, emptyResponseMessage(cand.FinishReason), 0), tokensUsed: tokens}, false
	}

	var calls []gemini.FunctionCall
	var texts []string
	for _, part := range cand.Content.Parts {
		switch {
		case part.FunctionCall != nil:
			calls = append(calls, *part.FunctionCall)
		case part.Text != "":
			texts = append(texts, part.Text)
		}
	}

	if len(calls) > 0 {
		return functionCallResult{calls: calls, tokensUsed: tokens}, false
	}
	if len(texts) > 0 {
		return textResult{text: strings.Join(texts, ""), tokensUsed: tokens}, false
	}

	uc.logRawResponse(ctx, resp)
	return errorResult{err: turnError(chatbot.ErrUnexpectedFormat, msgUnexpectedShape, 0), tokensUsed: tokens}, false
}

func (uc *implUseCase) logRawResponse(ctx context.Context, resp gemini.Response) {
	raw, err := json.Marshal(resp)
	if err != nil {
		uc.l.Errorf(ctx, "chatbot.usecase.logRawResponse: json.Marshal failed: %v", err)
		return
	}
	uc.l.Errorf(ctx, "chatbot.usecase.interpret: unexpected response: %s", raw)
}

func emptyResponseMessage(reason string) string {
	msg := "AI returned empty response"
	if reason != "" {
		msg += ": " + reason
	}
	switch reason {
	case gemini.FinishReasonMaxTokens:
		msg += msgMaxTokensHint
	case gemini.FinishReasonSafety:
		msg += msgSafetyHint
	case gemini.FinishReasonRecitation:
		msg += msgRecitationHint
	}
	return msg
}

func classifyCallError(err error) *chatbot.TurnError {
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		msg := fmt.Sprintf("HTTP error: %d", apiErr.StatusCode)
		if apiErr.Message != "" {
			msg += " - " + apiErr.Message
		}
		if apiErr.StatusCode == http.StatusTooManyRequests {
			msg += msgRateLimitHint
		}
		return turnError(chatbot.ErrModelStatus, msg, apiErr.StatusCode)
	}
	if errors.Is(err, gemini.ErrDecode) {
		return turnError(chatbot.ErrUnexpectedFormat, "JSON decode error: "+err.Error(), 0)
	}
	return turnError(chatbot.ErrModelTransport, "Request failed: "+err.Error(), 0)
}

func turnError(kind error, msg string, status int) *chatbot.TurnError {
	return &chatbot.TurnError{Kind: kind, Message: msg, Status: status}
}
