package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/model"
	"chatbot-srv/pkg/gemini"
	"chatbot-srv/pkg/locale"
)

// turnOutcome is everything one turn produced, successful or not.
type turnOutcome struct {
	text     string
	tokens   int
	criteria [][]any
	err      error
}

func (uc *implUseCase) Reply(ctx context.Context, input chatbot.ReplyInput) (chatbot.ReplyOutput, error) {
	msg := strings.TrimSpace(input.Message)
	if msg == "" {
		return chatbot.ReplyOutput{}, chatbot.ErrMessageRequired
	}

	current := gemini.Content{Role: gemini.RoleUser, Parts: []gemini.Part{{Text: msg}}}
	outcome := uc.runTurn(ctx, input.History, current, input.Authorized)

	if errors.Is(outcome.err, chatbot.ErrEmptyStop) {
		uc.l.Warnf(ctx, "chatbot.usecase.Reply: empty STOP response, refreshing files and retrying")
		if err := uc.RefreshFiles(ctx); err != nil {
			uc.l.Errorf(ctx, "chatbot.usecase.Reply: RefreshFiles failed: %v", err)
		}
		retry := uc.runTurn(ctx, input.History, current, input.Authorized)
		retry.tokens += outcome.tokens
		outcome = retry
	}

	return uc.toReplyOutput(ctx, outcome, locale.Detect(msg))
}

func (uc *implUseCase) ReplyToImage(ctx context.Context, input chatbot.ImageInput) (chatbot.ReplyOutput, error) {
	if len(input.Data) == 0 {
		return chatbot.ReplyOutput{}, chatbot.ErrImageRequired
	}
	mimeType := input.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	prompt := strings.TrimSpace(input.Text)
	if prompt == "" {
		prompt = chatbot.DefaultImagePrompt
	}

	current := gemini.Content{Role: gemini.RoleUser, Parts: []gemini.Part{
		{InlineData: &gemini.Blob{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(input.Data)}},
		{Text: prompt},
	}}
	outcome := uc.runTurn(ctx, input.History, current, input.Authorized)
	return uc.toReplyOutput(ctx, outcome, locale.TH)
}

func (uc *implUseCase) RefreshFiles(ctx context.Context) error {
	if uc.product == nil || uc.files == nil {
		return nil
	}
	summary, err := uc.product.RefreshCatalog(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "chatbot.usecase.RefreshFiles: RefreshCatalog failed: %v", err)
		if summary, err = uc.product.CatalogSummary(ctx); err != nil {
			return fmt.Errorf("catalog summary: %w", err)
		}
	}
	if _, err := uc.files.Upload(ctx, chatbot.CatalogFileKey, []byte(summary), chatbot.CatalogFileDisplayName); err != nil {
		return fmt.Errorf("upload catalog: %w", err)
	}
	return nil
}

// runTurn drives the function-calling loop. The first call may be followed by at
// most chatbot.MaxFunctionRounds rounds of function execution.
func (uc *implUseCase) runTurn(ctx context.Context, history []model.Message, current gemini.Content, authorized bool) turnOutcome {
	contents := uc.buildContents(ctx, history, current)

	var out turnOutcome
	res := uc.generate(ctx, contents)
	for round := 0; ; round++ {
		out.tokens += res.tokens()

		switch r := res.(type) {
		case textResult:
			out.text = r.text
			return out

		case errorResult:
			out.err = r.err
			return out

		case functionCallResult:
			if round >= chatbot.MaxFunctionRounds {
				uc.l.Errorf(ctx, "chatbot.usecase.runTurn: function call budget of %d rounds exhausted", chatbot.MaxFunctionRounds)
				out.text = chatbot.FallbackReply
				out.err = turnError(chatbot.ErrTooManyFunctionCalls, "Too many function calls - possible infinite loop", 0)
				return out
			}

			names, results, criteria := uc.executeCalls(ctx, r.calls, authorized)
			if len(criteria) > 0 {
				out.criteria = append(out.criteria, criteria)
			}
			contents = append(contents, functionCallContent(r.calls), functionResponseContent(names, results))
			res = uc.generate(ctx, contents)

		default:
			panic(fmt.Sprintf("chatbot: unexpected call result %T", res))
		}
	}
}

func (uc *implUseCase) toReplyOutput(ctx context.Context, outcome turnOutcome, lang string) (chatbot.ReplyOutput, error) {
	out := chatbot.ReplyOutput{
		Text:       outcome.text,
		Language:   lang,
		TokensUsed: outcome.tokens,
	}
	if len(outcome.criteria) > 0 {
		raw, err := json.Marshal(outcome.criteria)
		if err != nil {
			uc.l.Warnf(ctx, "chatbot.usecase.toReplyOutput: json.Marshal criteria failed: %v", err)
		} else {
			out.SearchCriteria = raw
		}
	}
	return out, outcome.err
}
