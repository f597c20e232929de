package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/voicepilot/voicepilot/internal/asr"
)

func (app *BotApp) handleVoice(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	fileID := msg.Voice.FileID

	app.log.Infow("voice start", "chat_id", chatID, "file_id", fileID,
		"duration", msg.Voice.Duration)

	audio, err := app.downloadVoice(fileID)
	if err != nil {
		app.log.Errorw("voice download fail", "chat_id", chatID, "err", err)
		app.sendText(chatID, MsgASRFailed)
		return
	}

	if app.Archive != nil {
		go app.archiveVoice(chatID, fileID, audio)
	}

	text, err := app.ASR.Transcribe(ctx, chatID, audio)
	switch {
	case errors.Is(err, asr.ErrNotConfigured):
		// operator-visible only; the user gets no message
		return
	case err != nil:
		app.log.Errorw("transcribe fail", "chat_id", chatID, "err", err)
		app.Notify.Notify(ctx, err, "speech recognition failure")
		app.sendText(chatID, MsgASRFailed)
		return
	}

	app.log.Infow("voice transcribed", "chat_id", chatID, "chars", len(text))
	app.converse(ctx, chatID, text)
}

func (app *BotApp) downloadVoice(fileID string) ([]byte, error) {
	file, err := app.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	resp, err := http.Get(file.Link(app.bot.Token))
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (app *BotApp) archiveVoice(chatID int64, fileID string, audio []byte) {
	key := fmt.Sprintf("voice/%d/%s.ogg", chatID, fileID)
	if _, err := app.Archive.Put(context.Background(), key, audio, "audio/ogg"); err != nil {
		app.log.Warnw("voice archive fail", "chat_id", chatID, "key", key, "err", err)
	}
}
