package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"chatbot-srv/internal/conversation/repository"
	"chatbot-srv/internal/model"
)

const (
	upsertConversationQuery = `
		INSERT INTO conversations (conversation_id, platform, user_id, max_messages_limit, last_activity)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (conversation_id) DO UPDATE SET last_activity = NOW()
		RETURNING max_messages_limit
	`

	nextSequenceQuery = `
		SELECT COALESCE(MAX(sequence_number), 0) + 1
		FROM messages
		WHERE conversation_id = $1
	`

	insertMessageQuery = `
		INSERT INTO messages (conversation_id, role, content, tokens_used, sequence_number, search_criteria)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, "timestamp"
	`

	// A message survives only if it is among the newest $2 AND younger than $3 days.
	trimMessagesQuery = `
		DELETE FROM messages
		WHERE conversation_id = $1
		AND (
			id NOT IN (
				SELECT id FROM messages
				WHERE conversation_id = $1
				ORDER BY sequence_number DESC
				LIMIT $2
			)
			OR "timestamp" < NOW() - ($3 * INTERVAL '1 day')
		)
	`
)

// RecordTurn - upsert conversation, append message, trim; all or nothing
func (r *implRepository) RecordTurn(ctx context.Context, opt repository.RecordTurnOptions) (model.Message, error) {
	msg := model.Message{
		ConversationID: opt.ConversationID,
		Role:           opt.Role,
		Content:        opt.Content,
		TokensUsed:     opt.TokensUsed,
		SearchCriteria: opt.SearchCriteria,
		IsActive:       true,
	}

	err := r.db.Tx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		var limit int
		if err := tx.QueryRowContext(ctx, upsertConversationQuery,
			opt.ConversationID, opt.Platform, nullString(opt.UserID), opt.MaxMessagesLimit,
		).Scan(&limit); err != nil {
			return fmt.Errorf("upsert conversation: %w", err)
		}

		if err := tx.QueryRowContext(ctx, nextSequenceQuery, opt.ConversationID).Scan(&msg.SequenceNumber); err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}

		if err := tx.QueryRowContext(ctx, insertMessageQuery,
			opt.ConversationID, opt.Role, opt.Content, opt.TokensUsed, msg.SequenceNumber, nullJSON(opt.SearchCriteria),
		).Scan(&msg.ID, &msg.Timestamp); err != nil {
			return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
		}

		if limit <= 0 {
			limit = opt.MaxMessagesLimit
		}
		if _, err := tx.ExecContext(ctx, trimMessagesQuery, opt.ConversationID, limit, opt.RetentionDays); err != nil {
			return fmt.Errorf("trim messages: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Message{}, fmt.Errorf("RecordTurn: %w", err)
	}
	return msg, nil
}
