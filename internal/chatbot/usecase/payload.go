package usecase

import (
	"context"

	"chatbot-srv/internal/chatbot"
	"chatbot-srv/internal/model"
	"chatbot-srv/pkg/gemini"
)

const catalogMimeType = "text/plain"

func (uc *implUseCase) buildRequest(contents []gemini.Content) gemini.Request {
	genCfg := uc.gemini.GenerationConfig()
	return gemini.Request{
		Contents: contents,
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: uc.systemPrompt}},
		},
		Tools:            functionTools(),
		GenerationConfig: &genCfg,
	}
}

// buildContents maps history oldest first, appends the new user content and
// attaches the catalog file to the first content when it comes from the user.
func (uc *implUseCase) buildContents(ctx context.Context, history []model.Message, current gemini.Content) []gemini.Content {
	contents := make([]gemini.Content, 0, len(history)+1)
	for _, msg := range history {
		role := gemini.RoleModel
		if msg.Role == model.RoleUser {
			role = gemini.RoleUser
		}
		contents = append(contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: msg.Content}},
		})
	}
	contents = append(contents, current)

	if contents[0].Role != gemini.RoleUser {
		return contents
	}
	uri := uc.catalogFileURI(ctx)
	if uri == "" {
		return contents
	}

	parts := make([]gemini.Part, 0, len(contents[0].Parts)+1)
	parts = append(parts, gemini.Part{FileData: &gemini.FileData{MimeType: catalogMimeType, FileURI: uri}})
	parts = append(parts, contents[0].Parts...)
	contents[0].Parts = parts
	return contents
}

// catalogFileURI returns the uploaded catalog reference, or "" when the catalog
// cannot be read or uploaded. The turn goes on without it.
func (uc *implUseCase) catalogFileURI(ctx context.Context) string {
	if uc.product == nil || uc.files == nil {
		return ""
	}
	summary, err := uc.product.CatalogSummary(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "chatbot.usecase.catalogFileURI: CatalogSummary failed: %v", err)
		return ""
	}
	if summary == "" {
		return ""
	}
	entry, err := uc.files.GetOrUpload(ctx, chatbot.CatalogFileKey, []byte(summary), chatbot.CatalogFileDisplayName, uc.cfg.CatalogMaxAge)
	if err != nil {
		uc.l.Warnf(ctx, "chatbot.usecase.catalogFileURI: GetOrUpload failed: %v", err)
		return ""
	}
	return entry.FileURI
}

// functionCallContent echoes the calls of one round back as a model content.
func functionCallContent(calls []gemini.FunctionCall) gemini.Content {
	parts := make([]gemini.Part, 0, len(calls))
	for _, call := range calls {
		args := call.Args
		if args == nil {
			args = map[string]any{}
		}
		parts = append(parts, gemini.Part{FunctionCall: &gemini.FunctionCall{Name: call.Name, Args: args}})
	}
	return gemini.Content{Role: gemini.RoleModel, Parts: parts}
}

func functionResponseContent(names []string, results []string) gemini.Content {
	parts := make([]gemini.Part, 0, len(results))
	for i, res := range results {
		parts = append(parts, gemini.Part{FunctionResponse: &gemini.FunctionResponse{
			Name:     names[i],
			Response: map[string]any{"content": res},
		}})
	}
	return gemini.Content{Role: gemini.RoleUser, Parts: parts}
}
