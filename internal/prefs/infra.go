package prefs

import (
	"context"
	"database/sql"
	"errors"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) Get(ctx context.Context, chatID int64) (*Preference, error) {
	var p Preference
	err := r.db.QueryRowContext(ctx, `
		SELECT chat_id, voice, style, tts_enabled
		FROM user_prefs
		WHERE chat_id = $1
	`, chatID).Scan(&p.ChatID, &p.Voice, &p.Style, &p.TTSEnabled)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, pref *Preference) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_prefs (chat_id, voice, style, tts_enabled)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (chat_id) DO NOTHING
	`, pref.ChatID, pref.Voice, pref.Style, pref.TTSEnabled)
	return err
}

func (r *repo) UpdateVoice(ctx context.Context, chatID int64, voice string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE user_prefs SET voice = $2 WHERE chat_id = $1
	`, chatID, voice)
	return err
}

func (r *repo) UpdateStyle(ctx context.Context, chatID int64, style string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE user_prefs SET style = $2 WHERE chat_id = $1
	`, chatID, style)
	return err
}

func (r *repo) UpdateTTS(ctx context.Context, chatID int64, enabled bool) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE user_prefs SET tts_enabled = $2 WHERE chat_id = $1
	`, chatID, enabled)
	return err
}
