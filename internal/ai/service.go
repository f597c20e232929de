package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/voicepilot/voicepilot/internal/prefs"
	"github.com/voicepilot/voicepilot/internal/records"
)

const historyLimit = 20

type Backend interface {
	GetCompletion(ctx context.Context, messages []openai.ChatCompletionMessage,
		temperature float32) (string, error)
}

type History interface {
	Recent(ctx context.Context, chatID int64, limit int) ([]records.Message, error)
}

type Service struct {
	backend Backend
	history History
}

func NewService(backend Backend, history History) *Service {
	return &Service{backend: backend, history: history}
}

// GetReply sends the prompt plus recent chat history to the backend. The
// conversation style only affects sampling temperature.
func (s *Service) GetReply(ctx context.Context, chatID int64, style, prompt string) (string, error) {
	past, err := s.history.Recent(ctx, chatID, historyLimit)
	if err != nil {
		return "", err
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(past)+1)
	for _, m := range past {
		role := openai.ChatMessageRoleUser
		if m.Role == records.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	return s.backend.GetCompletion(ctx, messages, styleTemperature(style))
}

func styleTemperature(style string) float32 {
	switch style {
	case prefs.StyleCreative:
		return 1.0
	case prefs.StylePrecise:
		return 0.3
	default:
		return 0.7
	}
}
