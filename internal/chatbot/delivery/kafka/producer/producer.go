package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"chatbot-srv/internal/chatbot"
	kafkaDelivery "chatbot-srv/internal/chatbot/delivery/kafka"
)

// PublishTurnCompleted publishes a turn analytics event keyed by conversation id
func (p *implProducer) PublishTurnCompleted(ctx context.Context, event chatbot.TurnCompleted) error {
	msg := kafkaDelivery.TurnCompletedMessage{
		ConversationID: event.ConversationID,
		Platform:       event.Platform,
		Language:       event.Language,
		TokensUsed:     event.TokensUsed,
		SearchCriteria: event.SearchCriteria,
		Success:        event.Success,
		Error:          event.Error,
		CompletedAt:    event.CompletedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal turn completed: %w", err)
	}

	if err := p.producer.Publish([]byte(event.ConversationID), body); err != nil {
		return fmt.Errorf("failed to publish turn completed: %w", err)
	}

	p.l.Debugf(ctx, "Published turn completed for conversation %s (tokens %d)", event.ConversationID, event.TokensUsed)
	return nil
}
