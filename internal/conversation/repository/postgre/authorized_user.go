package postgre

import (
	"context"
	"database/sql"
	"fmt"
)

// ListAuthorizedCandidates - stored ids contained in callerID; the caller applies the segment rule
func (r *implRepository) ListAuthorizedCandidates(ctx context.Context, callerID string) ([]string, error) {
	query := `SELECT user_id FROM authorized_users WHERE STRPOS($1, user_id) > 0`

	var ids []string
	err := r.db.Do(ctx, func(ctx context.Context, db *sql.DB) error {
		ids = nil
		rows, err := db.QueryContext(ctx, query, callerID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			ids = append(ids, id)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("ListAuthorizedCandidates: %w", err)
	}
	return ids, nil
}
