package asr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voicepilot/voicepilot/internal/jobs"
)

type scriptedProvider struct {
	configured bool

	uploadErr error
	createErr error
	pollErr   error

	createStatus string
	pollStatuses []string
	finalText    string
	finalError   string

	uploads int
	creates int
	polls   int
}

func (p *scriptedProvider) Configured() bool { return p.configured }

func (p *scriptedProvider) Upload(ctx context.Context, audio []byte) (string, error) {
	p.uploads++
	if p.uploadErr != nil {
		return "", p.uploadErr
	}
	return "https://cdn.example/upload/1", nil
}

func (p *scriptedProvider) CreateTranscript(ctx context.Context, audioURL string) (*Job, error) {
	p.creates++
	if p.createErr != nil {
		return nil, p.createErr
	}
	return &Job{ID: "tr_1", Status: p.createStatus}, nil
}

func (p *scriptedProvider) GetTranscript(ctx context.Context, id string) (*Job, error) {
	p.polls++
	if p.pollErr != nil {
		return nil, p.pollErr
	}
	status := p.pollStatuses[0]
	if len(p.pollStatuses) > 1 {
		p.pollStatuses = p.pollStatuses[1:]
	}
	job := &Job{ID: id, Status: status}
	if status == StatusCompleted {
		job.Text = p.finalText
	}
	if status == StatusError {
		job.Error = p.finalError
	}
	return job, nil
}

type recordingIndicator struct {
	starts []string
	stops  []string
}

func (r *recordingIndicator) Start(chatID int64, action string) *jobs.Handle {
	h := &jobs.Handle{Key: action}
	r.starts = append(r.starts, h.Key)
	return h
}

func (r *recordingIndicator) Stop(h *jobs.Handle) {
	r.stops = append(r.stops, h.Key)
}

func newTestService(p Provider, ind Indicator) *Service {
	return NewService(p, ind, time.Millisecond, 100*time.Millisecond, zap.NewNop().Sugar())
}

func TestTranscribePollsUntilCompleted(t *testing.T) {
	provider := &scriptedProvider{
		configured:   true,
		createStatus: StatusQueued,
		pollStatuses: []string{StatusQueued, StatusQueued, StatusCompleted},
		finalText:    "hello there",
	}
	ind := &recordingIndicator{}

	text, err := newTestService(provider, ind).Transcribe(context.Background(), 1, []byte("ogg"))
	require.NoError(t, err)

	assert.Equal(t, "hello there", text)
	assert.Equal(t, 3, provider.polls, "poll must stop on the first terminal status")
	assert.Equal(t, []string{ActionRecordVoice}, ind.starts)
	assert.Len(t, ind.stops, 1, "indicator stopped exactly once")
}

func TestTranscribeErrorStatusIsNotTranscript(t *testing.T) {
	provider := &scriptedProvider{
		configured:   true,
		createStatus: StatusProcessing,
		pollStatuses: []string{StatusError},
		finalError:   "audio too short",
	}
	ind := &recordingIndicator{}

	text, err := newTestService(provider, ind).Transcribe(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrTranscription)
	assert.Contains(t, err.Error(), "audio too short")
	assert.Empty(t, text)
	assert.Len(t, ind.stops, 1)
}

func TestTranscribeStopsIndicatorOnEveryFailurePath(t *testing.T) {
	cases := map[string]*scriptedProvider{
		"upload fails": {
			configured: true,
			uploadErr:  errors.New("boom"),
		},
		"create fails": {
			configured: true,
			createErr:  errors.New("boom"),
		},
		"poll fails": {
			configured:   true,
			createStatus: StatusQueued,
			pollErr:      errors.New("boom"),
		},
	}

	for name, provider := range cases {
		t.Run(name, func(t *testing.T) {
			ind := &recordingIndicator{}
			_, err := newTestService(provider, ind).Transcribe(context.Background(), 5, nil)
			require.Error(t, err)
			assert.Len(t, ind.starts, 1)
			assert.Len(t, ind.stops, 1, "indicator stopped exactly once")
		})
	}
}

func TestTranscribePollDeadline(t *testing.T) {
	provider := &scriptedProvider{
		configured:   true,
		createStatus: StatusQueued,
		pollStatuses: []string{StatusProcessing},
	}
	ind := &recordingIndicator{}

	svc := NewService(provider, ind, time.Millisecond, 10*time.Millisecond, zap.NewNop().Sugar())
	_, err := svc.Transcribe(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrPollTimeout)
	assert.Len(t, ind.stops, 1)
}

func TestTranscribeUnconfiguredMakesNoCalls(t *testing.T) {
	provider := &scriptedProvider{configured: false}
	ind := &recordingIndicator{}

	_, err := newTestService(provider, ind).Transcribe(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrNotConfigured)

	assert.Zero(t, provider.uploads)
	assert.Zero(t, provider.creates)
	assert.Zero(t, provider.polls)
	assert.Empty(t, ind.starts, "no indicator for a silently disabled feature")
}
