package asr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	assemblyAIBaseURL = "https://api.assemblyai.com/v2"

	// the sample .env ships this literal; treat it as "not configured"
	tokenPlaceholder = "assemblyai_token"
)

type AssemblyAIClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewAssemblyAIClient() *AssemblyAIClient {
	return &AssemblyAIClient{
		apiKey:  os.Getenv("ASSEMBLYAI_TOKEN"),
		baseURL: assemblyAIBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *AssemblyAIClient) Configured() bool {
	return c.apiKey != "" && c.apiKey != tokenPlaceholder
}

// Upload pushes raw audio bytes and returns the provider-hosted audio URL.
func (c *AssemblyAIClient) Upload(ctx context.Context, audio []byte) (string, error) {
	var out struct {
		UploadURL string `json:"upload_url"`
	}
	if err := c.do(ctx, http.MethodPost, "/upload", "application/octet-stream",
		bytes.NewReader(audio), &out); err != nil {
		return "", err
	}
	if out.UploadURL == "" {
		return "", fmt.Errorf("assemblyai: empty upload_url")
	}
	return out.UploadURL, nil
}

func (c *AssemblyAIClient) CreateTranscript(ctx context.Context, audioURL string) (*Job, error) {
	payload, err := json.Marshal(map[string]string{"audio_url": audioURL})
	if err != nil {
		return nil, err
	}
	var job Job
	if err := c.do(ctx, http.MethodPost, "/transcript", "application/json",
		bytes.NewReader(payload), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *AssemblyAIClient) GetTranscript(ctx context.Context, id string) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodGet, "/transcript/"+id, "", nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *AssemblyAIClient) do(ctx context.Context, method, path, contentType string,
	body io.Reader, out any) error {

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("authorization", c.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("assemblyai request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("assemblyai %s %s: %s", method, path, raw)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode assemblyai response: %w", err)
	}
	return nil
}
