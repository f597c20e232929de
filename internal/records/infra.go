package records

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) Add(ctx context.Context, chatID int64, role, content string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO messages (chat_id, role, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, chatID, role, content, time.Now()).Scan(&id)
	return id, err
}

func (r *repo) Recent(ctx context.Context, chatID int64, limit int) ([]Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, chat_id, role, content, created_at
		FROM messages
		WHERE chat_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, chatID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// chronological order
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func (r *repo) LastByRole(ctx context.Context, chatID int64, role string) (*Message, error) {
	var m Message
	err := r.db.QueryRowContext(ctx, `
		SELECT id, chat_id, role, content, created_at
		FROM messages
		WHERE chat_id = $1 AND role = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, chatID, role).Scan(&m.ID, &m.ChatID, &m.Role, &m.Content, &m.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repo) DeleteByChat(ctx context.Context, chatID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM messages WHERE chat_id = $1
	`, chatID)
	return err
}

func (r *repo) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM messages WHERE created_at < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
