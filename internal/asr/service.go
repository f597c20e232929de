package asr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/voicepilot/voicepilot/internal/jobs"
)

// Chat action announced while a voice message is being transcribed.
const ActionRecordVoice = "record_voice"

var (
	// ErrNotConfigured — ASR credential missing or left at its
	// placeholder. Operator-facing only: callers stay silent to the user.
	ErrNotConfigured = errors.New("asr: provider not configured")

	// ErrPollTimeout — the remote job never reached a terminal status
	// within the poll deadline.
	ErrPollTimeout = errors.New("asr: transcription poll deadline exceeded")

	// ErrTranscription — the provider reported the job as failed. The
	// provider message rides on the wrapped error, never on the
	// transcript text.
	ErrTranscription = errors.New("asr: transcription failed")
)

// Indicator is the slice of jobs.Controller the pipeline needs.
type Indicator interface {
	Start(chatID int64, action string) *jobs.Handle
	Stop(h *jobs.Handle)
}

type Service struct {
	provider     Provider
	indicator    Indicator
	pollInterval time.Duration
	pollTimeout  time.Duration
	log          *zap.SugaredLogger
}

func NewService(provider Provider, indicator Indicator,
	pollInterval, pollTimeout time.Duration, log *zap.SugaredLogger) *Service {

	return &Service{
		provider:     provider,
		indicator:    indicator,
		pollInterval: pollInterval,
		pollTimeout:  pollTimeout,
		log:          log,
	}
}

// Transcribe drives one voice message through upload → job creation →
// poll-until-terminal. The recording indicator started here is stopped on
// every exit path.
func (s *Service) Transcribe(ctx context.Context, chatID int64, audio []byte) (string, error) {
	if !s.provider.Configured() {
		s.log.Warnw("asr token missing or placeholder, voice feature disabled",
			"chat_id", chatID)
		return "", ErrNotConfigured
	}

	h := s.indicator.Start(chatID, ActionRecordVoice)
	defer s.indicator.Stop(h)

	audioURL, err := s.provider.Upload(ctx, audio)
	if err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}

	job, err := s.provider.CreateTranscript(ctx, audioURL)
	if err != nil {
		return "", fmt.Errorf("create transcript: %w", err)
	}
	s.log.Debugw("transcript created", "id", job.ID, "status", job.Status)

	deadline := time.Now().Add(s.pollTimeout)
	for !job.Terminal() {
		if time.Now().After(deadline) {
			return "", ErrPollTimeout
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.pollInterval):
		}

		job, err = s.provider.GetTranscript(ctx, job.ID)
		if err != nil {
			return "", fmt.Errorf("poll transcript: %w", err)
		}
		s.log.Debugw("transcript polled", "id", job.ID, "status", job.Status)
	}

	if job.Status == StatusError {
		return "", fmt.Errorf("%w: %s", ErrTranscription, job.Error)
	}
	return job.Text, nil
}
