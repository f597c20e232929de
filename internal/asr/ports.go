package asr

import "context"

// Transcription job statuses as reported by the provider.
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// Job is one remote transcription job. Ephemeral: discarded once a
// terminal status is reached.
type Job struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Text   string `json:"text"`
	Error  string `json:"error"`
}

func (j *Job) Terminal() bool {
	return j.Status == StatusCompleted || j.Status == StatusError
}

// Provider is the asynchronous speech-to-text backend: upload the audio,
// create a job for it, then poll the job by id.
type Provider interface {
	Configured() bool
	Upload(ctx context.Context, audio []byte) (string, error)
	CreateTranscript(ctx context.Context, audioURL string) (*Job, error)
	GetTranscript(ctx context.Context, id string) (*Job, error)
}
