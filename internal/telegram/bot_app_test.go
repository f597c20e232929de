package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"

	"github.com/voicepilot/voicepilot/internal/asr"
)

func TestRecordVoiceActionMatchesTelegram(t *testing.T) {
	// the transcription pipeline keys its indicator by this action, so it
	// must be the exact chat action the bot sends
	assert.Equal(t, tgbotapi.ChatRecordVoice, asr.ActionRecordVoice)
}
