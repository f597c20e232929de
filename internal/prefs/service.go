package prefs

import (
	"context"
	"fmt"
)

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

// Get returns the chat's preference record, creating the default one on
// first access.
func (s *service) Get(ctx context.Context, chatID int64) (*Preference, error) {
	pref, err := s.repo.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if pref != nil {
		return pref, nil
	}

	pref = &Preference{
		ChatID: chatID,
		Voice:  DefaultVoice,
		Style:  DefaultStyle,
	}
	if err := s.repo.Create(ctx, pref); err != nil {
		return nil, err
	}
	return pref, nil
}

// Lookup reads without the lazy default creation.
func (s *service) Lookup(ctx context.Context, chatID int64) (*Preference, error) {
	return s.repo.Get(ctx, chatID)
}

func (s *service) SetVoice(ctx context.Context, chatID int64, voice string) error {
	if voice == "" {
		return fmt.Errorf("empty voice")
	}
	if _, err := s.Get(ctx, chatID); err != nil {
		return err
	}
	return s.repo.UpdateVoice(ctx, chatID, voice)
}

func (s *service) SetStyle(ctx context.Context, chatID int64, style string) error {
	if !ValidStyle(style) {
		return fmt.Errorf("unknown style %q", style)
	}
	if _, err := s.Get(ctx, chatID); err != nil {
		return err
	}
	return s.repo.UpdateStyle(ctx, chatID, style)
}

func (s *service) ToggleTTS(ctx context.Context, chatID int64) (bool, error) {
	pref, err := s.Get(ctx, chatID)
	if err != nil {
		return false, err
	}
	enabled := !pref.TTSEnabled
	if err := s.repo.UpdateTTS(ctx, chatID, enabled); err != nil {
		return false, err
	}
	return enabled, nil
}
