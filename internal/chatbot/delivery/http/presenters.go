package http

import (
	"chatbot-srv/internal/chatbot"
)

type chatReq struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
}

func (r chatReq) toInput() chatbot.ChatInput {
	return chatbot.ChatInput{
		Message:        r.Message,
		ConversationID: r.ConversationID,
	}
}

type chatResp struct {
	Success        bool   `json:"success"`
	Response       string `json:"response"`
	ConversationID string `json:"conversationId"`
	Language       string `json:"language,omitempty"`
	Error          string `json:"error,omitempty"`
}

func newChatResp(o chatbot.ChatOutput) chatResp {
	return chatResp{
		Success:        true,
		Response:       o.Response,
		ConversationID: o.ConversationID,
		Language:       o.Language,
	}
}

func newChatErrorResp(o chatbot.ChatOutput, err error) chatResp {
	return chatResp{
		Success:        false,
		Response:       "",
		ConversationID: o.ConversationID,
		Error:          err.Error(),
	}
}
