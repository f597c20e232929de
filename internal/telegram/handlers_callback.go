package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// always answer Telegram, even for bad tokens
	app.bot.Request(tgbotapi.NewCallback(cb.ID, ""))

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	ev, err := parseNav(cb.Data)
	if err != nil {
		// malformed tokens are a bug in our own keyboards, not user input
		app.log.Errorw("bad callback token", "chat_id", chatID, "data", cb.Data, "err", err)
		app.Notify.Notify(ctx, err, "malformed navigation token")
		return
	}

	app.log.Debugw("callback", "chat_id", chatID, "data", cb.Data)

	// set events mutate first, then land on the screen applyNav picked
	screen, err := applyNav(ctx, app.Prefs, chatID, ev)
	if err != nil {
		app.log.Errorw("apply callback fail", "chat_id", chatID, "data", cb.Data, "err", err)
		return
	}

	switch screen.kind {
	case navSettings:
		app.showSettings(ctx, chatID, cb)

	case navLangMenu:
		app.showLanguages(ctx, chatID, cb)

	case navGenderMenu:
		app.showGenders(ctx, chatID, cb, screen.lang)

	case navVoiceMenu:
		app.showVoices(ctx, chatID, cb, screen.lang, screen.gender)

	case navStyleMenu:
		app.showStyles(ctx, chatID, cb)

	case navTTSMenu:
		app.showTTS(ctx, chatID, cb)

	case navTTSSay:
		app.speakLastReply(ctx, chatID)
	}
}
