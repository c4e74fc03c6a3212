package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"chatbot-srv/internal/conversation/repository"
	"chatbot-srv/internal/model"
)

// ListHistory - the most recent active messages, oldest first
func (r *implRepository) ListHistory(ctx context.Context, opt repository.ListHistoryOptions) ([]model.Message, error) {
	query := `
		SELECT id, conversation_id, role, content, tokens_used, sequence_number, search_criteria, is_active, "timestamp"
		FROM (
			SELECT id, conversation_id, role, content, tokens_used, sequence_number, search_criteria, is_active, "timestamp"
			FROM messages
			WHERE conversation_id = $1 AND is_active = TRUE
			ORDER BY sequence_number DESC
			LIMIT $2
		) AS recent
		ORDER BY sequence_number ASC
	`

	var messages []model.Message
	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		messages = nil
		rows, err := db.QueryContext(ctx, query, opt.ConversationID, opt.Limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var msg model.Message
			var criteria []byte
			if err := rows.Scan(
				&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content,
				&msg.TokensUsed, &msg.SequenceNumber, &criteria, &msg.IsActive, &msg.Timestamp,
			); err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			if len(criteria) > 0 {
				msg.SearchCriteria = criteria
			}
			messages = append(messages, msg)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("ListHistory: %w", err)
	}
	return messages, nil
}

// SumTokens - total tokens spent on a conversation
func (r *implRepository) SumTokens(ctx context.Context, conversationID string) (int, error) {
	var total int
	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		return db.QueryRowContext(ctx,
			`SELECT COALESCE(SUM(tokens_used), 0) FROM messages WHERE conversation_id = $1`, conversationID,
		).Scan(&total)
	})
	if err != nil {
		return 0, fmt.Errorf("SumTokens: %w", err)
	}
	return total, nil
}

// DeactivateMessages - soft reset of one conversation
func (r *implRepository) DeactivateMessages(ctx context.Context, conversationID string) (int64, error) {
	query := `UPDATE messages SET is_active = FALSE WHERE conversation_id = $1 AND is_active = TRUE`

	affected, err := r.exec(ctx, query, conversationID)
	if err != nil {
		return 0, fmt.Errorf("DeactivateMessages: %w", err)
	}
	return affected, nil
}

// DeactivateMessagesByPrefix - soft reset of every conversation whose id starts with prefix
func (r *implRepository) DeactivateMessagesByPrefix(ctx context.Context, prefix string) (int64, error) {
	query := `
		UPDATE messages SET is_active = FALSE
		WHERE LEFT(conversation_id, LENGTH($1)) = $1 AND is_active = TRUE
	`

	affected, err := r.exec(ctx, query, prefix)
	if err != nil {
		return 0, fmt.Errorf("DeactivateMessagesByPrefix: %w", err)
	}
	return affected, nil
}

func (r *implRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	var affected int64
	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}

// nullJSON - Convert empty/nil json.RawMessage to database-compatible value
func nullJSON(data []byte) any {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return data
}
