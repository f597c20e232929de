package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/voicepilot/voicepilot/internal/format"
)

func (app *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		app.sendText(chatID, MsgWelcome)

	case "settings":
		app.showSettings(ctx, chatID, nil)

	case "voice":
		app.speakLastReply(ctx, chatID)

	case "say":
		text := strings.TrimSpace(msg.CommandArguments())
		if text == "" {
			app.sendText(chatID, MsgSayUsage)
			return
		}
		pref, err := app.Prefs.Get(ctx, chatID)
		if err != nil {
			app.log.Errorw("prefs get fail", "chat_id", chatID, "err", err)
			return
		}
		app.sendVoiceReply(ctx, chatID, pref.Voice, text)

	case "new":
		if err := app.Records.ClearHistory(ctx, chatID); err != nil {
			app.log.Errorw("clear history fail", "chat_id", chatID, "err", err)
			return
		}
		app.sendText(chatID, MsgHistoryReset)
	}
}

// speakLastReply synthesizes the most recent AI answer with the chat's
// current voice.
func (app *BotApp) speakLastReply(ctx context.Context, chatID int64) {
	last, err := app.Records.LastAssistant(ctx, chatID)
	if err != nil {
		app.log.Errorw("last reply lookup fail", "chat_id", chatID, "err", err)
		return
	}
	if last == nil {
		app.sendText(chatID, MsgNoLastReply)
		return
	}

	pref, err := app.Prefs.Get(ctx, chatID)
	if err != nil {
		app.log.Errorw("prefs get fail", "chat_id", chatID, "err", err)
		return
	}
	app.sendVoiceReply(ctx, chatID, pref.Voice, format.PlainText(last.Content))
}
