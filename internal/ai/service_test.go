package ai

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voicepilot/voicepilot/internal/prefs"
	"github.com/voicepilot/voicepilot/internal/records"
)

type fakeBackend struct {
	gotMessages []openai.ChatCompletionMessage
	gotTemp     float32
}

func (f *fakeBackend) GetCompletion(ctx context.Context,
	messages []openai.ChatCompletionMessage, temperature float32) (string, error) {

	f.gotMessages = messages
	f.gotTemp = temperature
	return "reply", nil
}

type fakeHistory struct {
	msgs []records.Message
}

func (f *fakeHistory) Recent(ctx context.Context, chatID int64, limit int) ([]records.Message, error) {
	return f.msgs, nil
}

func TestGetReplyBuildsContext(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, &fakeHistory{msgs: []records.Message{
		{Role: records.RoleUser, Content: "hi"},
		{Role: records.RoleAssistant, Content: "hello"},
	}})

	reply, err := svc.GetReply(context.Background(), 1, prefs.StyleBalanced, "how are you?")
	require.NoError(t, err)
	assert.Equal(t, "reply", reply)

	require.Len(t, backend.gotMessages, 3)
	assert.Equal(t, openai.ChatMessageRoleUser, backend.gotMessages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, backend.gotMessages[1].Role)
	assert.Equal(t, "how are you?", backend.gotMessages[2].Content)
}

func TestStyleTemperature(t *testing.T) {
	backend := &fakeBackend{}
	svc := NewService(backend, &fakeHistory{})
	ctx := context.Background()

	_, err := svc.GetReply(ctx, 1, prefs.StyleCreative, "x")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, backend.gotTemp, 0.001)

	_, err = svc.GetReply(ctx, 1, prefs.StylePrecise, "x")
	require.NoError(t, err)
	assert.InDelta(t, 0.3, backend.gotTemp, 0.001)

	_, err = svc.GetReply(ctx, 1, prefs.StyleBalanced, "x")
	require.NoError(t, err)
	assert.InDelta(t, 0.7, backend.gotTemp, 0.001)
}
