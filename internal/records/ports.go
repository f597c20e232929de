package records

import (
	"context"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	ID        int64     `json:"id"`
	ChatID    int64     `json:"chat_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Repo interface {
	Add(ctx context.Context, chatID int64, role, content string) (int64, error)
	Recent(ctx context.Context, chatID int64, limit int) ([]Message, error)
	LastByRole(ctx context.Context, chatID int64, role string) (*Message, error)
	DeleteByChat(ctx context.Context, chatID int64) error
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Service interface {
	AddMessage(ctx context.Context, chatID int64, role, content string) error
	Recent(ctx context.Context, chatID int64, limit int) ([]Message, error)
	LastAssistant(ctx context.Context, chatID int64) (*Message, error)
	ClearHistory(ctx context.Context, chatID int64) error
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
