package usecase

import (
	"strings"
	"unicode/utf16"

	"chatbot-srv/internal/linebot"
	"chatbot-srv/internal/model"
	pkgLine "chatbot-srv/pkg/line"
)

// target is where one event belongs and where its replies go.
type target struct {
	userID         string
	conversationID string
	sourceType     string
	messageType    string
	// groupID is the group or room id, empty in 1:1 chats.
	groupID string
	replyTo string
}

// routeEvent decides whether the bot answers event. 1:1 text and image messages are
// always answered; in groups and rooms only text that mentions the bot.
func routeEvent(event pkgLine.Event, botUserID string) (target, bool) {
	if event.Type != pkgLine.EventTypeMessage || event.Message == nil {
		return target{}, false
	}
	msgType := event.Message.Type
	if msgType != pkgLine.MessageTypeText && msgType != pkgLine.MessageTypeImage {
		return target{}, false
	}
	if event.ReplyToken == "" || event.Source.Type == "" {
		return target{}, false
	}

	userID := event.Source.UserID
	if userID == "" {
		return target{}, false
	}

	switch event.Source.Type {
	case pkgLine.SourceTypeUser:
		return target{
			userID:         userID,
			conversationID: model.LinePrefix + userID,
			sourceType:     pkgLine.SourceTypeUser,
			messageType:    msgType,
			replyTo:        userID,
		}, true

	case pkgLine.SourceTypeGroup, pkgLine.SourceTypeRoom:
		if msgType != pkgLine.MessageTypeText || !pkgLine.IsBotMentioned(event.Message, botUserID) {
			return target{}, false
		}
		groupID := event.Source.GroupID
		if groupID == "" {
			groupID = event.Source.RoomID
		}
		if groupID == "" {
			return target{}, false
		}
		return target{
			userID:         userID,
			conversationID: model.LinePrefix + "group_" + groupID + "_" + userID,
			sourceType:     event.Source.Type,
			messageType:    msgType,
			groupID:        groupID,
			replyTo:        groupID,
		}, true
	}

	return target{}, false
}

// commandText is the message text without mention spans. LINE indexes mentions in
// UTF-16 code units.
func commandText(msg *pkgLine.Message) string {
	if msg == nil {
		return ""
	}
	if msg.Mention == nil || len(msg.Mention.Mentionees) == 0 {
		return strings.TrimSpace(msg.Text)
	}

	units := utf16.Encode([]rune(msg.Text))
	drop := make([]bool, len(units))
	for _, m := range msg.Mention.Mentionees {
		for i := m.Index; i < m.Index+m.Length && i < len(units); i++ {
			if i >= 0 {
				drop[i] = true
			}
		}
	}
	kept := make([]uint16, 0, len(units))
	for i, u := range units {
		if !drop[i] {
			kept = append(kept, u)
		}
	}
	return strings.TrimSpace(string(utf16.Decode(kept)))
}

func parseCommand(text string) linebot.Command {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return linebot.CommandNone
	}
	for _, cmd := range linebot.PauseCommands {
		if lower == strings.ToLower(cmd) {
			return linebot.CommandPause
		}
	}
	for _, cmd := range linebot.ResumeCommands {
		if lower == strings.ToLower(cmd) {
			return linebot.CommandResume
		}
	}
	if lower == linebot.ResetCommand {
		return linebot.CommandReset
	}
	return linebot.CommandNone
}

// stripTrigger removes a leading trigger word, used to address the bot from LINE desktop.
func stripTrigger(text, prefix string) string {
	text = strings.TrimSpace(text)
	if prefix == "" {
		return text
	}
	if len(text) >= len(prefix) && strings.EqualFold(text[:len(prefix)], prefix) {
		return strings.TrimSpace(text[len(prefix):])
	}
	return text
}
