package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/model"
	"chatbot-srv/pkg/filemanager"
	"chatbot-srv/pkg/gemini"
	"chatbot-srv/pkg/log"
	"chatbot-srv/pkg/product"
)

type genResult struct {
	resp gemini.Response
	err  error
}

// fakeGenerator replays results in order and repeats the last one.
type fakeGenerator struct {
	mu       sync.Mutex
	results  []genResult
	requests []gemini.Request
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req gemini.Request) (gemini.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	i := len(f.requests) - 1
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	return f.results[i].resp, f.results[i].err
}

func (f *fakeGenerator) GenerationConfig() gemini.GenerationConfig {
	return gemini.GenerationConfig{Temperature: 0.7, MaxOutputTokens: 2048}
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeProduct struct {
	mu         sync.Mutex
	summary    string
	searchArgs [][]string
	detailArgs []string
	quotations int
	refreshes  int
}

func (f *fakeProduct) CatalogSummary(ctx context.Context) (string, error) { return f.summary, nil }

func (f *fakeProduct) RefreshCatalog(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return f.summary, nil
}

func (f *fakeProduct) ClearCache() error { return nil }

func (f *fakeProduct) Search(ctx context.Context, criterias []string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchArgs = append(f.searchArgs, criterias)
	return "products for " + strings.Join(criterias, ","), nil
}

func (f *fakeProduct) Detail(ctx context.Context, productName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailArgs = append(f.detailArgs, productName)
	if productName == "missing" {
		return "", product.ErrUnavailable
	}
	return "detail of " + productName, nil
}

func (f *fakeProduct) Quotation(ctx context.Context, items []product.QuotationItem, priceType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quotations++
	return "quotation " + priceType, nil
}

type fakeFiles struct {
	mu      sync.Mutex
	gets    int
	uploads int
}

func (f *fakeFiles) GetOrUpload(ctx context.Context, key string, content []byte, displayName string, maxAge time.Duration) (filemanager.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	return filemanager.Entry{FileURI: "https://files/" + key}, nil
}

func (f *fakeFiles) Upload(ctx context.Context, key string, content []byte, displayName string) (filemanager.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads++
	return filemanager.Entry{FileURI: "https://files/" + key + "/fresh"}, nil
}

func (f *fakeFiles) Entries() (map[string]filemanager.Entry, error) { return nil, nil }

func (f *fakeFiles) Clear() error { return nil }

type fakeConversation struct {
	conversation.UseCase

	history   []model.Message
	turns     []conversation.RecordTurnInput
	recordErr error
}

func (f *fakeConversation) NewConversationID() string { return "conv_1_abc" }

func (f *fakeConversation) History(ctx context.Context, id string) []model.Message { return f.history }

func (f *fakeConversation) RecordTurn(ctx context.Context, input conversation.RecordTurnInput) (model.Message, error) {
	if f.recordErr != nil {
		return model.Message{}, f.recordErr
	}
	f.turns = append(f.turns, input)
	return model.Message{ConversationID: input.ConversationID, SequenceNumber: len(f.turns)}, nil
}

type fakeProducer struct {
	events []chatbot.TurnCompleted
}

func (f *fakeProducer) PublishTurnCompleted(ctx context.Context, event chatbot.TurnCompleted) error {
	f.events = append(f.events, event)
	return nil
}

func textResp(text string, tokens int) genResult {
	return genResult{resp: gemini.Response{
		Candidates:    []gemini.Candidate{{Content: gemini.Content{Role: gemini.RoleModel, Parts: []gemini.Part{{Text: text}}}, FinishReason: gemini.FinishReasonStop}},
		UsageMetadata: gemini.UsageMetadata{TotalTokenCount: tokens},
	}}
}

func callResp(tokens int, calls ...gemini.FunctionCall) genResult {
	parts := make([]gemini.Part, 0, len(calls))
	for i := range calls {
		parts = append(parts, gemini.Part{FunctionCall: &calls[i]})
	}
	return genResult{resp: gemini.Response{
		Candidates:    []gemini.Candidate{{Content: gemini.Content{Role: gemini.RoleModel, Parts: parts}, FinishReason: gemini.FinishReasonStop}},
		UsageMetadata: gemini.UsageMetadata{TotalTokenCount: tokens},
	}}
}

func emptyResp(reason string) genResult {
	return genResult{resp: gemini.Response{
		Candidates: []gemini.Candidate{{FinishReason: reason}},
	}}
}

func newTestUseCase(gen *fakeGenerator, conv *fakeConversation, opts ...Option) (*implUseCase, *[]time.Duration) {
	uc := New(log.NewNop(), gen, conv, chatbot.Config{}, opts...).(*implUseCase)
	delays := &[]time.Duration{}
	uc.sleep = func(d time.Duration) <-chan time.Time {
		*delays = append(*delays, d)
		ch := make(chan time.Time, 1)
		ch <- time.Time{}
		return ch
	}
	uc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return uc, delays
}

func TestReply_Text(t *testing.T) {
	gen := &fakeGenerator{results: []genResult{textResp("สวัสดีค่ะ", 12)}}
	uc, _ := newTestUseCase(gen, &fakeConversation{})

	out, err := uc.Reply(context.Background(), chatbot.ReplyInput{Message: "สวัสดี"})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if out.Text != "สวัสดีค่ะ" || out.TokensUsed != 12 || out.Language != "th" {
		t.Errorf("Reply() = %+v", out)
	}
	if out.SearchCriteria != nil {
		t.Errorf("SearchCriteria = %s, want nil", out.SearchCriteria)
	}

	req := gen.requests[0]
	if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != chatbot.DefaultSystemPrompt {
		t.Errorf("systemInstruction = %+v", req.SystemInstruction)
	}
	if len(req.Tools) != 1 || len(req.Tools[0].FunctionDeclarations) != 3 {
		t.Errorf("tools = %+v", req.Tools)
	}
	if req.GenerationConfig == nil || req.GenerationConfig.MaxOutputTokens != 2048 {
		t.Errorf("generationConfig = %+v", req.GenerationConfig)
	}
}

func TestReply_EmptyMessage(t *testing.T) {
	gen := &fakeGenerator{results: []genResult{textResp("x", 1)}}
	uc, _ := newTestUseCase(gen, &fakeConversation{})

	if _, err := uc.Reply(context.Background(), chatbot.ReplyInput{Message: "   "}); !errors.Is(err, chatbot.ErrMessageRequired) {
		t.Fatalf("Reply() error = %v, want ErrMessageRequired", err)
	}
	if gen.calls() != 0 {
		t.Errorf("model called %d times", gen.calls())
	}
}

func TestReply_HistoryAndCatalog(t *testing.T) {
	gen := &fakeGenerator{results: []genResult{textResp("ok", 1)}}
	files := &fakeFiles{}
	uc, _ := newTestUseCase(gen, &fakeConversation{},
		WithProduct(&fakeProduct{summary: "catalog"}), WithFileManager(files))

	history := []model.Message{
		{Role: model.RoleUser, Content: "hi"},
		{Role: model.RoleAssistant, Content: "hello"},
	}
	if _, err := uc.Reply(context.Background(), chatbot.ReplyInput{Message: "price?", History: history}); err != nil {
		t.Fatalf("Reply() error = %v", err)
	}

	contents := gen.requests[0].Contents
	if len(contents) != 3 {
		t.Fatalf("len(contents) = %d, want 3", len(contents))
	}
	if contents[0].Role != gemini.RoleUser || contents[1].Role != gemini.RoleModel || contents[2].Role != gemini.RoleUser {
		t.Errorf("roles = %s %s %s", contents[0].Role, contents[1].Role, contents[2].Role)
	}
	first := contents[0].Parts
	if len(first) != 2 || first[0].FileData == nil || first[0].FileData.FileURI != "https://files/"+chatbot.CatalogFileKey {
		t.Fatalf("first content parts = %+v", first)
	}
	if first[0].FileData.MimeType != "text/plain" || first[1].Text != "hi" {
		t.Errorf("first content parts = %+v", first)
	}
	if files.gets != 1 {
		t.Errorf("GetOrUpload calls = %d, want 1", files.gets)
	}
}

func TestReply_FunctionRound(t *testing.T) {
	gen := &fakeGenerator{results: []genResult{
		callResp(10,
			gemini.FunctionCall{Name: fnSearchProducts, Args: map[string]any{"criterias": []any{"สายไฟ THW", "เบรกเกอร์"}}},
			gemini.FunctionCall{Name: fnSearchProductDetail, Args: map[string]any{"productName": "THW 2.5"}},
		),
		textResp("done", 15),
	}}
	prod := &fakeProduct{}
	uc, _ := newTestUseCase(gen, &fakeConversation{}, WithProduct(prod))

	out, err := uc.Reply(context.Background(), chatbot.ReplyInput{Message: "need cable"})
	if err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	if out.Text != "done" || out.TokensUsed != 25 || out.Language != "en" {
		t.Errorf("Reply() = %+v", out)
	}

	var criteria [][]any
	if err := json.Unmarshal(out.SearchCriteria, &criteria); err != nil {
		t.Fatalf("criteria: %v", err)
	}
	if len(criteria) != 1 || len(criteria[0]) != 3 || criteria[0][0] != "สายไฟ THW" {
		t.Errorf("criteria = %s", out.SearchCriteria)
	}

	second := gen.requests[1].Contents
	if len(second) != 3 {
		t.Fatalf("len(contents) = %d, want 3", len(second))
	}
	echo, responses := second[1], second[2]
	if echo.Role != gemini.RoleModel || len(echo.Parts) != 2 || echo.Parts[0].FunctionCall.Name != fnSearchProducts {
		t.Errorf("model content = %+v", echo)
	}
	if responses.Role != gemini.RoleUser || len(responses.Parts) != 2 {
		t.Fatalf("response content = %+v", responses)
	}
	if got := responses.Parts[0].FunctionResponse.Response["content"]; got != "products for สายไฟ THW,เบรกเกอร์" {
		t.Errorf("search response = %v", got)
	}
	if got := responses.Parts[1].FunctionResponse; got.Name != fnSearchProductDetail || got.Response["content"] != "detail of THW 2.5" {
		t.Errorf("detail response = %+v", got)
	}
}

func TestReply_EmptyArgsEchoedAsObject(t *testing.T) {
	gen := &fakeGenerator{results: []genResult{
		callResp(1, gemini.FunctionCall{Name: fnSearchProducts}),
		textResp("ok", 1),
	}}
	uc, _ := newTestUseCase(gen, &fakeConversation{}, WithProduct(&fakeProduct{}))

	if _, err := uc.Reply(context.Background(), chatbot.ReplyInput{Message: "x"}); err != nil {
		t.Fatalf("Reply() error = %v", err)
	}
	raw, err := json.Marshal(gen.requests[1].Contents[1])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"args":{}`) {
		t.Errorf("echoed call = %s", raw)
	}
	if got := gen.requests[1].Contents[2].Parts[0].FunctionResponse.Response["content"]; got != "No search criteria provided." {
		t.Errorf("response = %v", got)
	}
}

func TestReply_FunctionRoundBound(t *testing.T) {
	gen := &fakeGenerator{results: []genResult{
		callResp(5, gemini.FunctionCall{Name: fnSearchProducts, Args: map[string]any{"criterias": []any{"a"}}}),
	}}
	prod := &fakeProduct{}
	uc, _ := newTestUseCase(gen, &fakeConversation{}, WithProduct(prod))

	out, err := uc.Reply(context.Background(), chatbot.ReplyInput{Message: "loop"})
	if !errors.Is(err, chatbot.ErrTooManyFunctionCalls) {
		t.Fatalf("Reply() error = %v, want ErrTooManyFunctionCalls", err)
	}
	if err.Error() != "Too many function calls - possible infinite loop" {
		t.Errorf("error message = %q", err.Error())
	}
	if out.Text != chatbot.FallbackReply {
		t.Errorf("Text = %q", out.Text)
	}
	if gen.calls() != chatbot.MaxFunctionRounds+1 {
		t.Errorf("model calls = %d, want %d", gen.calls(), chatbot.MaxFunctionRounds+1)
	}
	if len(prod.searchArgs) != chatbot.MaxFunctionRounds {
		t.Errorf("function executions = %d, want %d", len(prod.searchArgs), chatbot.MaxFunctionRounds)
	}
	if out.TokensUsed != 5*(chatbot.MaxFunctionRounds+1) {
		t.Errorf("TokensUsed = %d", out.TokensUsed)
	}
}

func TestReply_EmptyStopRetry(t *testing.T) {
	t.Run("recovers", func(t *testing.T) {
		gen := &fakeGenerator{results: []genResult{emptyResp(gemini.FinishReasonStop), textResp("ok", 3)}}
		uc, delays := newTestUseCase(gen, &fakeConversation{})

		out, err := uc.Reply(context.Background(), chatbot.ReplyInput{Message: "x"})
		if err != nil {
			t.Fatalf("Reply() error = %v", err)
		}
		if out.Text != "ok" || gen.calls() != 2 {
			t.Errorf("Text = %q, calls = %d", out.Text, gen.calls())
		}
		if len(*delays) != 1 || (*delays)[0] != 2*time.Second {
			t.Errorf("delays = %v, want [2s]", *delays)
		}
	})

	t.Run("exhausted then self heal", func(t *testing.T) {
		gen := &fakeGenerator{results: []genResult{emptyResp(gemini.FinishReasonStop)}}
		files := &fakeFiles{}
		prod := &fakeProduct{summary: "catalog"}
		uc, delays := newTestUseCase(gen, &fakeConversation{}, WithProduct(prod), WithFileManager(files))

		_, err := uc.Reply(context.Background(), chatbot.ReplyInput{Message: "x"})
		if !errors.Is(err, chatbot.ErrEmptyStop) {
			t.Fatalf("Reply() error = %v, want ErrEmptyStop", err)
		}
		if err.Error() != "AI returned empty response: STOP" {
			t.Errorf("error message = %q", err.Error())
		}
		if gen.calls() != 2*chatbot.MaxAttempts {
			t.Errorf("model calls = %d, want %d", gen.calls(), 2*chatbot.MaxAttempts)
		}
		want := []time.Duration{2 * time.Second, 3 * time.Second, 2 * time.Second, 3 * time.Second}
		if len(*delays) != len(want) {
			t.Fatalf("delays = %v, want %v", *delays, want)
		}
		for i := range want {
			if (*delays)[i] != want[i] {
				t.Errorf("delay[%d] = %v, want %v", i, (*delays)[i], want[i])
			}
		}
		if files.uploads != 1 || prod.refreshes != 1 {
			t.Errorf("uploads = %d, refreshes = %d", files.uploads, prod.refreshes)
		}
	})
}

func TestReply_TerminalErrors(t *testing.T) {
	tests := []struct {
		name    string
		result  genResult
		kind    error
		message string
	}{
		{
			name:    "max tokens",
			result:  emptyResp(gemini.FinishReasonMaxTokens),
			kind:    chatbot.ErrEmptyResponse,
			message: "AI returned empty response: MAX_TOKENS. The conversation is too long. Please start a new conversation.",
		},
		{
			name:    "safety",
			result:  emptyResp(gemini.FinishReasonSafety),
			kind:    chatbot.ErrEmptyResponse,
			message: "AI returned empty response: SAFETY. Content was blocked by safety filters.",
		},
		{
			name:    "recitation",
			result:  emptyResp(gemini.FinishReasonRecitation),
			kind:    chatbot.ErrEmptyResponse,
			message: "AI returned empty response: RECITATION. Content was blocked due to recitation concerns.",
		},
		{
			name:    "prompt blocked",
			result:  genResult{resp: gemini.Response{PromptFeedback: &gemini.PromptFeedback{BlockReason: "SAFETY"}}},
			kind:    chatbot.ErrPromptBlocked,
			message: "Prompt blocked: SAFETY",
		},
		{
			name:    "no candidates",
			result:  genResult{resp: gemini.Response{}},
			kind:    chatbot.ErrUnexpectedFormat,
			message: "Unexpected API response format",
		},
		{
			name:    "rate limited",
			result:  genResult{err: &gemini.APIError{StatusCode: 429, Message: "Resource exhausted"}},
			kind:    chatbot.ErrModelStatus,
			message: "HTTP error: 429 - Resource exhausted. Please wait a moment or upgrade to paid tier for higher limits.",
		},
		{
			name:    "server error",
			result:  genResult{err: &gemini.APIError{StatusCode: 500, Message: "Internal"}},
			kind:    chatbot.ErrModelStatus,
			message: "HTTP error: 500 - Internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{results: []genResult{tt.result}}
			uc, delays := newTestUseCase(gen, &fakeConversation{})

			_, err := uc.Reply(context.Background(), chatbot.ReplyInput{Message: "x"})
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Reply() error = %v, want %v", err, tt.kind)
			}
			if err.Error() != tt.message {
				t.Errorf("error message = %q, want %q", err.Error(), tt.message)
			}
			if gen.calls() != 1 || len(*delays) != 0 {
				t.Errorf("calls = %d, delays = %v", gen.calls(), *delays)
			}
		})
	}
}

func TestReply_RateLimitDetection(t *testing.T) {
	gen := &fakeGenerator{results: []genResult{{err: &gemini.APIError{StatusCode: 429, Message: "quota"}}}}
	uc, _ := newTestUseCase(gen, &fakeConversation{})

	_, err := uc.Reply(context.Background(), chatbot.ReplyInput{Message: "x"})
	if !chatbot.IsRateLimited(err) {
		t.Errorf("IsRateLimited(%v) = false", err)
	}
}

func TestExecuteFunction(t *testing.T) {
	quotation := gemini.FunctionCall{Name: fnGenerateQuotation, Args: map[string]any{
		"quotaDetail": []any{map[string]any{"productName": "THW 2.5", "amount": 3}},
		"priceType":   "a",
	}}

	tests := []struct {
		name        string
		call        gemini.FunctionCall
		authorized  bool
		noProduct   bool
		want        string
		quotations  int
	}{
		{name: "unauthorized quotation", call: quotation, want: resultQuotationUnauthorized},
		{name: "authorized quotation", call: quotation, authorized: true, want: "quotation a", quotations: 1},
		{
			name:       "invalid price type",
			call:       gemini.FunctionCall{Name: fnGenerateQuotation, Args: map[string]any{"quotaDetail": []any{map[string]any{"productName": "x", "amount": 1}}, "priceType": "zz"}},
			authorized: true,
			want:       resultInvalidPriceType,
		},
		{
			name:       "empty quotation",
			call:       gemini.FunctionCall{Name: fnGenerateQuotation, Args: map[string]any{"priceType": "a"}},
			authorized: true,
			want:       "No products provided for quotation.",
		},
		{
			name: "empty product name",
			call: gemini.FunctionCall{Name: fnSearchProductDetail, Args: map[string]any{}},
			want: "No product name provided.",
		},
		{
			name: "detail not found",
			call: gemini.FunctionCall{Name: fnSearchProductDetail, Args: map[string]any{"productName": "missing"}},
			want: "Product details not found.",
		},
		{name: "unknown", call: gemini.FunctionCall{Name: "delete_everything"}, want: "Unknown function: delete_everything"},
		{name: "no product client", call: quotation, authorized: true, noProduct: true, want: "Product API service not available."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prod := &fakeProduct{}
			var opts []Option
			if !tt.noProduct {
				opts = append(opts, WithProduct(prod))
			}
			uc, _ := newTestUseCase(&fakeGenerator{}, &fakeConversation{}, opts...)

			if got := uc.executeFunction(context.Background(), tt.call, tt.authorized); got != tt.want {
				t.Errorf("executeFunction() = %q, want %q", got, tt.want)
			}
			if prod.quotations != tt.quotations {
				t.Errorf("remote quotations = %d, want %d", prod.quotations, tt.quotations)
			}
		})
	}
}

func TestCriteriaOf(t *testing.T) {
	got := criteriaOf(gemini.FunctionCall{Name: fnGenerateQuotation, Args: map[string]any{"priceType": "b"}})
	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `[{"priceType":"b","quotaDetail":[]}]` {
		t.Errorf("criteria = %s", raw)
	}
	if got := criteriaOf(gemini.FunctionCall{Name: fnSearchProductDetail, Args: map[string]any{}}); got != nil {
		t.Errorf("criteria without productName = %v", got)
	}
}

func TestReplyToImage(t *testing.T) {
	gen := &fakeGenerator{results: []genResult{textResp("a breaker", 7)}}
	uc, _ := newTestUseCase(gen, &fakeConversation{})

	out, err := uc.ReplyToImage(context.Background(), chatbot.ImageInput{Data: []byte{0xff, 0xd8}, MimeType: "image/jpeg"})
	if err != nil {
		t.Fatalf("ReplyToImage() error = %v", err)
	}
	if out.Text != "a breaker" || out.Language != "th" {
		t.Errorf("ReplyToImage() = %+v", out)
	}
	parts := gen.requests[0].Contents[0].Parts
	if len(parts) != 2 || parts[0].InlineData == nil || parts[0].InlineData.Data != "/9g=" {
		t.Fatalf("parts = %+v", parts)
	}
	if parts[1].Text != chatbot.DefaultImagePrompt {
		t.Errorf("prompt = %q", parts[1].Text)
	}

	if _, err := uc.ReplyToImage(context.Background(), chatbot.ImageInput{}); !errors.Is(err, chatbot.ErrImageRequired) {
		t.Errorf("empty image error = %v", err)
	}
}

func TestChat(t *testing.T) {
	t.Run("records two rows with summed tokens", func(t *testing.T) {
		gen := &fakeGenerator{results: []genResult{
			callResp(10, gemini.FunctionCall{Name: fnSearchProducts, Args: map[string]any{"criterias": []any{"ท่อ PVC"}}}),
			textResp("มีค่ะ", 15),
		}}
		conv := &fakeConversation{}
		producer := &fakeProducer{}
		uc, _ := newTestUseCase(gen, conv, WithProduct(&fakeProduct{}), WithProducer(producer))

		out, err := uc.Chat(context.Background(), chatbot.ChatInput{Message: "มีท่อไหม"})
		if err != nil {
			t.Fatalf("Chat() error = %v", err)
		}
		if out.ConversationID != "conv_1_abc" || out.Response != "มีค่ะ" || out.Language != "th" {
			t.Errorf("Chat() = %+v", out)
		}
		if len(conv.turns) != 2 {
			t.Fatalf("recorded %d rows, want 2", len(conv.turns))
		}
		user, assistant := conv.turns[0], conv.turns[1]
		if user.Role != model.RoleUser || user.TokensUsed != 0 || string(user.SearchCriteria) != `[["ท่อ PVC"]]` {
			t.Errorf("user row = %+v (criteria %s)", user, user.SearchCriteria)
		}
		if assistant.Role != model.RoleAssistant || assistant.TokensUsed != 25 || assistant.Content != "มีค่ะ" {
			t.Errorf("assistant row = %+v", assistant)
		}
		if len(producer.events) != 1 || !producer.events[0].Success || producer.events[0].Platform != model.PlatformAPI {
			t.Errorf("events = %+v", producer.events)
		}
	})

	t.Run("failure records user row only", func(t *testing.T) {
		gen := &fakeGenerator{results: []genResult{{err: &gemini.APIError{StatusCode: 500, Message: "boom"}}}}
		conv := &fakeConversation{}
		uc, _ := newTestUseCase(gen, conv)

		out, err := uc.Chat(context.Background(), chatbot.ChatInput{Message: "hello", ConversationID: "conv_9_x"})
		if !errors.Is(err, chatbot.ErrModelStatus) {
			t.Fatalf("Chat() error = %v", err)
		}
		if out.ConversationID != "conv_9_x" || out.Response != "" {
			t.Errorf("Chat() = %+v", out)
		}
		if len(conv.turns) != 1 || conv.turns[0].Role != model.RoleUser {
			t.Errorf("turns = %+v", conv.turns)
		}
	})

	t.Run("record failure", func(t *testing.T) {
		gen := &fakeGenerator{results: []genResult{textResp("ok", 1)}}
		uc, _ := newTestUseCase(gen, &fakeConversation{recordErr: errors.New("db down")})

		if _, err := uc.Chat(context.Background(), chatbot.ChatInput{Message: "hello"}); !errors.Is(err, chatbot.ErrRecordFailed) {
			t.Errorf("Chat() error = %v, want ErrRecordFailed", err)
		}
	})
}
