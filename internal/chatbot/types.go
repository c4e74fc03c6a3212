package chatbot

import (
	"encoding/json"
	"time"

	"chatbot-srv/internal/model"
)

const (
	// CatalogFileKey is the file manager key of the catalog summary upload.
	CatalogFileKey         = "catalog-summary"
	CatalogFileDisplayName = "Product Catalog"

	MaxAttempts       = 3
	MaxFunctionRounds = 3

	DefaultSystemPrompt = "You are a helpful customer service assistant for Sirichai Electric. Follow the instructions and use the product catalog information provided in the context. IMPORTANT: Always respond in the same language the customer uses. If they write in English, respond in English. If they write in Thai, respond in Thai."
	DefaultImagePrompt  = "The customer sent this image. Analyze it. If it shows electrical products, identify the type and search the catalog. If not product-related, describe what you see and ask how you can help."

	// FallbackReply is returned as text when the function-call budget is exhausted.
	FallbackReply = "ขออภัยค่ะ ระบบประมวลผลข้อมูลไม่สำเร็จ กรุณาลองถามใหม่อีกครั้งหรือติดต่อพนักงานเพื่อขอความช่วยเหลือค่ะ"
)

// Config for the chatbot usecase.
type Config struct {
	SystemPromptPath string
	CatalogMaxAge    time.Duration
}

type ChatInput struct {
	Message        string
	ConversationID string
}

type ChatOutput struct {
	Response       string
	ConversationID string
	Language       string
}

type ReplyInput struct {
	Message    string
	History    []model.Message
	Authorized bool
}

type ImageInput struct {
	Data       []byte
	MimeType   string
	Text       string
	History    []model.Message
	Authorized bool
}

// ReplyOutput is filled as far as the turn got, also when an error is returned.
type ReplyOutput struct {
	Text           string
	Language       string
	TokensUsed     int
	SearchCriteria json.RawMessage
}

type ExchangeInput struct {
	ConversationID string
	UserContent    string
	Reply          ReplyOutput
	ReplyErr       error
}

// TurnCompleted is the analytics record of one model turn.
type TurnCompleted struct {
	ConversationID string
	Platform       string
	Language       string
	TokensUsed     int
	SearchCriteria json.RawMessage
	Success        bool
	Error          string
	CompletedAt    time.Time
}
