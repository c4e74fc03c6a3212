package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chatbot-srv/internal/conversation/repository"
	"chatbot-srv/internal/model"
)

const conversationColumns = `conversation_id, platform, user_id, max_messages_limit, is_chatbot_active, paused_at, created_at, last_activity`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversation(s rowScanner) (model.Conversation, error) {
	var conv model.Conversation
	var userID sql.NullString
	var pausedAt sql.NullTime

	if err := s.Scan(
		&conv.ConversationID, &conv.Platform, &userID, &conv.MaxMessagesLimit,
		&conv.IsChatbotActive, &pausedAt, &conv.CreatedAt, &conv.LastActivity,
	); err != nil {
		return model.Conversation{}, err
	}

	conv.UserID = userID.String
	if pausedAt.Valid {
		conv.PausedAt = &pausedAt.Time
	}
	return conv, nil
}

// GetConversation - conversation by id, ErrNotFound when missing
func (r *implRepository) GetConversation(ctx context.Context, id string) (model.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE conversation_id = $1`

	var conv model.Conversation
	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		var err error
		conv, err = scanConversation(db.QueryRowContext(ctx, query, id))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return model.Conversation{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Conversation{}, fmt.Errorf("GetConversation: %w", err)
	}
	return conv, nil
}

// DeleteConversation - hard delete, messages cascade
func (r *implRepository) DeleteConversation(ctx context.Context, id string) (bool, error) {
	var affected int64
	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		res, err := db.ExecContext(ctx, `DELETE FROM conversations WHERE conversation_id = $1`, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return false, fmt.Errorf("DeleteConversation: %w", err)
	}
	return affected > 0, nil
}

// DeleteIdleConversations - delete conversations with no activity for idleFor
func (r *implRepository) DeleteIdleConversations(ctx context.Context, idleFor time.Duration) ([]string, error) {
	query := `DELETE FROM conversations WHERE last_activity < NOW() - ($1 * INTERVAL '1 second') RETURNING conversation_id`

	var ids []string
	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		ids = ids[:0]
		rows, err := db.QueryContext(ctx, query, int64(idleFor.Seconds()))
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("DeleteIdleConversations: %w", err)
	}
	return ids, nil
}

// ListConversations - filter by platform and/or user, most recent activity first
func (r *implRepository) ListConversations(ctx context.Context, opt repository.ListConversationsOptions) ([]model.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE 1=1`
	args := []any{}
	argIdx := 1

	if opt.Platform != "" {
		query += fmt.Sprintf(" AND platform = $%d", argIdx)
		args = append(args, opt.Platform)
		argIdx++
	}
	if opt.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", argIdx)
		args = append(args, opt.UserID)
		argIdx++
	}

	query += " ORDER BY last_activity DESC"

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, opt.Limit)
	}

	convs, err := r.queryConversations(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListConversations: %w", err)
	}
	return convs, nil
}

// ListPausedConversations - paused conversations, longest paused first
func (r *implRepository) ListPausedConversations(ctx context.Context, limit int) ([]model.Conversation, error) {
	query := `SELECT ` + conversationColumns + `
		FROM conversations
		WHERE is_chatbot_active = FALSE
		ORDER BY paused_at ASC
		LIMIT $1`

	convs, err := r.queryConversations(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ListPausedConversations: %w", err)
	}
	return convs, nil
}

// ListActiveConversations - conversations with activity since opt.Since
func (r *implRepository) ListActiveConversations(ctx context.Context, opt repository.ListActiveOptions) ([]model.Conversation, error) {
	query := `SELECT ` + conversationColumns + `
		FROM conversations
		WHERE last_activity >= $1
		ORDER BY last_activity DESC
		LIMIT $2 OFFSET $3`

	convs, err := r.queryConversations(ctx, query, opt.Since, opt.Limit, opt.Offset)
	if err != nil {
		return nil, fmt.Errorf("ListActiveConversations: %w", err)
	}
	return convs, nil
}

// CountActiveConversations - total for ListActiveConversations pagination
func (r *implRepository) CountActiveConversations(ctx context.Context, since time.Time) (int, error) {
	var total int
	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		return db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversations WHERE last_activity >= $1`, since).Scan(&total)
	})
	if err != nil {
		return 0, fmt.Errorf("CountActiveConversations: %w", err)
	}
	return total, nil
}

// IsChatbotActive - pause flag, ErrNotFound when the conversation does not exist
func (r *implRepository) IsChatbotActive(ctx context.Context, id string) (bool, error) {
	var active bool
	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		return db.QueryRowContext(ctx, `SELECT is_chatbot_active FROM conversations WHERE conversation_id = $1`, id).Scan(&active)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, repository.ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("IsChatbotActive: %w", err)
	}
	return active, nil
}

// SetChatbotActive - pause or resume, creating the conversation row if needed
func (r *implRepository) SetChatbotActive(ctx context.Context, opt repository.SetActiveOptions) error {
	query := `
		INSERT INTO conversations (conversation_id, platform, user_id, max_messages_limit, is_chatbot_active, paused_at, last_activity)
		VALUES ($1, $2, $3, $4, $5, CASE WHEN $5 THEN NULL ELSE NOW() END, NOW())
		ON CONFLICT (conversation_id) DO UPDATE
		SET is_chatbot_active = EXCLUDED.is_chatbot_active,
		    paused_at = EXCLUDED.paused_at
	`

	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		_, err := db.ExecContext(ctx, query,
			opt.ConversationID, opt.Platform, nullString(opt.UserID), opt.MaxMessagesLimit, opt.Active,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("SetChatbotActive: %w", err)
	}
	return nil
}

// ResumePausedBefore - reactivate every conversation paused before the cutoff
func (r *implRepository) ResumePausedBefore(ctx context.Context, before time.Time) (int64, error) {
	query := `
		UPDATE conversations
		SET is_chatbot_active = TRUE, paused_at = NULL
		WHERE is_chatbot_active = FALSE AND paused_at IS NOT NULL AND paused_at < $1
	`

	var affected int64
	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		res, err := db.ExecContext(ctx, query, before)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("ResumePausedBefore: %w", err)
	}
	return affected, nil
}

func (r *implRepository) queryConversations(ctx context.Context, query string, args ...any) ([]model.Conversation, error) {
	var convs []model.Conversation
	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		convs = nil
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			conv, err := scanConversation(rows)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			convs = append(convs, conv)
		}
		return rows.Err()
	})
	return convs, err
}

// nullString - empty string stored as NULL
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
