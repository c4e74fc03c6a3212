package http

import (
	"chatbot-srv/internal/conversation"
	"chatbot-srv/internal/model"
	"chatbot-srv/pkg/paginator"
)

type listActiveReq struct {
	Days int `form:"days"`
	paginator.PaginateQuery
}

func (r listActiveReq) toInput() conversation.ListActiveInput {
	return conversation.ListActiveInput{
		Days:     r.Days,
		Paginate: r.PaginateQuery,
	}
}

type messageResp struct {
	Role           string `json:"role"`
	Content        string `json:"content"`
	Timestamp      int64  `json:"timestamp"`
	TokensUsed     int    `json:"tokens_used"`
	SequenceNumber int    `json:"sequence_number"`
}

// conversationResp keeps both the snake_case columns and the camelCase aliases older clients read.
type conversationResp struct {
	ConversationID   string        `json:"conversation_id"`
	Platform         string        `json:"platform"`
	UserID           string        `json:"user_id,omitempty"`
	MaxMessagesLimit int           `json:"max_messages_limit"`
	IsChatbotActive  bool          `json:"is_chatbot_active"`
	PausedAt         *int64        `json:"paused_at"`
	CreatedAt        int64         `json:"created_at"`
	LastActivity     int64         `json:"last_activity"`
	Messages         []messageResp `json:"messages,omitempty"`
	TotalTokens      int           `json:"total_tokens,omitempty"`

	ConversationIDAlias string `json:"conversationId"`
	CreatedAtAlias      int64  `json:"createdAt"`
	LastActivityAlias   int64  `json:"lastActivity"`
}

type getConversationResp struct {
	Success      bool             `json:"success"`
	Conversation conversationResp `json:"conversation"`
}

type clearConversationResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type listResp struct {
	Conversations []conversationResp           `json:"conversations"`
	Total         int                          `json:"total"`
	Paginator     *paginator.PaginatorResponse `json:"paginator,omitempty"`
}

type stateResp struct {
	ConversationID  string `json:"conversation_id"`
	IsChatbotActive bool   `json:"is_chatbot_active"`
}

func newConversationResp(conv model.Conversation, msgs []model.Message, totalTokens int) conversationResp {
	resp := conversationResp{
		ConversationID:      conv.ConversationID,
		Platform:            conv.Platform,
		UserID:              conv.UserID,
		MaxMessagesLimit:    conv.MaxMessagesLimit,
		IsChatbotActive:     conv.IsChatbotActive,
		CreatedAt:           conv.CreatedAt.Unix(),
		LastActivity:        conv.LastActivity.Unix(),
		TotalTokens:         totalTokens,
		ConversationIDAlias: conv.ConversationID,
		CreatedAtAlias:      conv.CreatedAt.Unix(),
		LastActivityAlias:   conv.LastActivity.Unix(),
	}
	if conv.PausedAt != nil {
		ts := conv.PausedAt.Unix()
		resp.PausedAt = &ts
	}
	if msgs != nil {
		resp.Messages = make([]messageResp, 0, len(msgs))
		for _, m := range msgs {
			resp.Messages = append(resp.Messages, messageResp{
				Role:           m.Role,
				Content:        m.Content,
				Timestamp:      m.Timestamp.Unix(),
				TokensUsed:     m.TokensUsed,
				SequenceNumber: m.SequenceNumber,
			})
		}
	}
	return resp
}

func newGetConversationResp(o conversation.ConversationOutput) getConversationResp {
	return getConversationResp{
		Success:      true,
		Conversation: newConversationResp(o.Conversation, o.Messages, o.TotalTokens),
	}
}

func newListResp(convs []model.Conversation) listResp {
	resp := listResp{Conversations: make([]conversationResp, 0, len(convs)), Total: len(convs)}
	for _, c := range convs {
		resp.Conversations = append(resp.Conversations, newConversationResp(c, nil, 0))
	}
	return resp
}

func newListActiveResp(o conversation.ListActiveOutput) listResp {
	resp := newListResp(o.Conversations)
	p := o.Paginator.ToResponse()
	resp.Total = int(p.Total)
	resp.Paginator = &p
	return resp
}
