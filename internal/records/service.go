package records

import (
	"context"
	"time"
)

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) AddMessage(ctx context.Context, chatID int64, role, content string) error {
	_, err := s.repo.Add(ctx, chatID, role, content)
	return err
}

func (s *service) Recent(ctx context.Context, chatID int64, limit int) ([]Message, error) {
	return s.repo.Recent(ctx, chatID, limit)
}

func (s *service) LastAssistant(ctx context.Context, chatID int64) (*Message, error) {
	return s.repo.LastByRole(ctx, chatID, RoleAssistant)
}

func (s *service) ClearHistory(ctx context.Context, chatID int64) error {
	return s.repo.DeleteByChat(ctx, chatID)
}

func (s *service) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.PruneBefore(ctx, cutoff)
}
