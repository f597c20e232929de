package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/voicepilot/voicepilot/internal/format"
	"github.com/voicepilot/voicepilot/internal/records"
)

func (app *BotApp) handleText(ctx context.Context, msg *tgbotapi.Message) {
	app.converse(ctx, msg.Chat.ID, msg.Text)
}

// converse runs one prompt through the AI backend and delivers the reply,
// spoken too when the chat has TTS enabled.
func (app *BotApp) converse(ctx context.Context, chatID int64, prompt string) {
	pref, err := app.Prefs.Get(ctx, chatID)
	if err != nil {
		app.log.Errorw("prefs get fail", "chat_id", chatID, "err", err)
		return
	}

	if err := app.Records.AddMessage(ctx, chatID, records.RoleUser, prompt); err != nil {
		app.log.Warnw("record user message fail", "chat_id", chatID, "err", err)
	}

	h := app.Indicator.Start(chatID, tgbotapi.ChatTyping)
	reply, err := app.AI.GetReply(ctx, chatID, pref.Style, prompt)
	app.Indicator.Stop(h)

	if err != nil {
		app.log.Errorw("ai reply fail", "chat_id", chatID, "err", err)
		app.Notify.Notify(ctx, err, "AI backend failure")
		app.sendText(chatID, MsgAIFailed)
		return
	}

	if err := app.Records.AddMessage(ctx, chatID, records.RoleAssistant, reply); err != nil {
		app.log.Warnw("record assistant message fail", "chat_id", chatID, "err", err)
	}

	m := tgbotapi.NewMessage(chatID, format.TelegramHTML(reply))
	m.ParseMode = tgbotapi.ModeHTML
	m.DisableWebPagePreview = true
	if !pref.TTSEnabled {
		// offer on-demand speech when automatic TTS is off
		m.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🔊 Speak", tokTTSSay),
			),
		)
	}
	if _, err := app.bot.Send(m); err != nil {
		app.log.Warnw("reply send fail", "chat_id", chatID, "err", err)
	}

	if pref.TTSEnabled {
		app.sendVoiceReply(ctx, chatID, pref.Voice, format.PlainText(reply))
	}
}

func (app *BotApp) sendVoiceReply(ctx context.Context, chatID int64, voice, text string) {
	h := app.Indicator.Start(chatID, tgbotapi.ChatRecordVoice)
	audio, err := app.Speech.Synthesize(ctx, voice, text)
	app.Indicator.Stop(h)

	if err != nil {
		app.log.Warnw("tts synth fail", "chat_id", chatID, "voice", voice, "err", err)
		return
	}

	vm := tgbotapi.NewVoice(chatID, tgbotapi.FileBytes{Name: "reply.mp3", Bytes: audio})
	if _, err := app.bot.Send(vm); err != nil {
		app.log.Warnw("voice send fail", "chat_id", chatID, "err", err)
	}
}

func (app *BotApp) sendText(chatID int64, text string) {
	if _, err := app.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		app.log.Warnw("send fail", "chat_id", chatID, "err", err)
	}
}
