package line

import pkghttp "chatbot-srv/pkg/http"

// LineConfig holds configuration for the LINE Messaging API client.
type LineConfig struct {
	ChannelAccessToken string
	APIBaseURL         string
	DataBaseURL        string
	HTTPClient         pkghttp.IClient
}

type lineImpl struct {
	accessToken string
	apiBaseURL  string
	dataBaseURL string
	httpClient  pkghttp.IClient
}

// WebhookPayload is the body LINE posts to the webhook.
type WebhookPayload struct {
	Destination string  `json:"destination"`
	Events      []Event `json:"events"`
}

// Event is one webhook event.
type Event struct {
	Type            string           `json:"type"`
	ReplyToken      string           `json:"replyToken"`
	Timestamp       int64            `json:"timestamp"`
	WebhookEventID  string           `json:"webhookEventId"`
	DeliveryContext *DeliveryContext `json:"deliveryContext,omitempty"`
	Source          Source           `json:"source"`
	Message         *Message         `json:"message,omitempty"`
}

// DeliveryContext reports whether an event is a redelivery.
type DeliveryContext struct {
	IsRedelivery bool `json:"isRedelivery"`
}

// Source identifies who sent the event.
type Source struct {
	Type    string `json:"type"`
	UserID  string `json:"userId"`
	GroupID string `json:"groupId"`
	RoomID  string `json:"roomId"`
}

// Message is the message object of a message event.
type Message struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Text    string   `json:"text"`
	Mention *Mention `json:"mention,omitempty"`
}

// Mention lists the users mentioned in a text message.
type Mention struct {
	Mentionees []Mentionee `json:"mentionees"`
}

// Mentionee is one mentioned user.
type Mentionee struct {
	Index  int    `json:"index"`
	Length int    `json:"length"`
	UserID string `json:"userId"`
	IsSelf bool   `json:"isSelf"`
}

// Profile is a LINE user profile.
type Profile struct {
	UserID        string `json:"userId"`
	DisplayName   string `json:"displayName"`
	PictureURL    string `json:"pictureUrl"`
	StatusMessage string `json:"statusMessage"`
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type pushRequest struct {
	To       string        `json:"to"`
	Messages []textMessage `json:"messages"`
}

type loadingRequest struct {
	ChatID         string `json:"chatId"`
	LoadingSeconds int    `json:"loadingSeconds"`
}
