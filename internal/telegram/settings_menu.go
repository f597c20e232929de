package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/voicepilot/voicepilot/internal/prefs"
	"github.com/voicepilot/voicepilot/internal/speech"
)

// Every screen re-reads the preference record and the catalog, so the
// header and the selection marker always show the just-mutated state.

func (app *BotApp) showSettings(ctx context.Context, chatID int64, cb *tgbotapi.CallbackQuery) {
	// lazy preference creation for chats we have never seen
	if _, err := app.Prefs.Get(ctx, chatID); err != nil {
		app.log.Errorw("prefs get fail", "chat_id", chatID, "err", err)
		return
	}
	app.render(chatID, cb, "Bot settings",
		tgbotapi.NewInlineKeyboardMarkup(settingsRows()...))
}

func (app *BotApp) showLanguages(ctx context.Context, chatID int64, cb *tgbotapi.CallbackQuery) {
	pref, catalog, ok := app.menuState(ctx, chatID)
	if !ok {
		return
	}
	text := fmt.Sprintf("Your current voice is <b>%s</b>\n\nLanguages", pref.Voice)
	app.render(chatID, cb, text,
		tgbotapi.NewInlineKeyboardMarkup(languageRows(catalog)...))
}

func (app *BotApp) showGenders(ctx context.Context, chatID int64, cb *tgbotapi.CallbackQuery, lang string) {
	pref, catalog, ok := app.menuState(ctx, chatID)
	if !ok {
		return
	}
	text := fmt.Sprintf("Your current voice is <b>%s</b>\n\nGenders", pref.Voice)
	app.render(chatID, cb, text,
		tgbotapi.NewInlineKeyboardMarkup(genderRows(catalog, lang)...))
}

func (app *BotApp) showVoices(ctx context.Context, chatID int64, cb *tgbotapi.CallbackQuery, lang, gender string) {
	pref, catalog, ok := app.menuState(ctx, chatID)
	if !ok {
		return
	}
	text := fmt.Sprintf("Your current voice is <b>%s</b>\n\nVoices", pref.Voice)
	app.render(chatID, cb, text,
		tgbotapi.NewInlineKeyboardMarkup(voiceRows(catalog, lang, gender, pref.Voice)...))
}

func (app *BotApp) showStyles(ctx context.Context, chatID int64, cb *tgbotapi.CallbackQuery) {
	pref, err := app.Prefs.Get(ctx, chatID)
	if err != nil {
		app.log.Errorw("prefs get fail", "chat_id", chatID, "err", err)
		return
	}
	text := fmt.Sprintf("Your current conversation style is <b>%s</b>\n\nStyles", pref.Style)
	app.render(chatID, cb, text,
		tgbotapi.NewInlineKeyboardMarkup(styleRows(pref.Style)...))
}

func (app *BotApp) showTTS(ctx context.Context, chatID int64, cb *tgbotapi.CallbackQuery) {
	pref, err := app.Prefs.Get(ctx, chatID)
	if err != nil {
		app.log.Errorw("prefs get fail", "chat_id", chatID, "err", err)
		return
	}
	app.render(chatID, cb, "Automatic Text-to-Speech",
		tgbotapi.NewInlineKeyboardMarkup(ttsRows(pref.TTSEnabled)...))
}

func (app *BotApp) menuState(ctx context.Context, chatID int64) (*prefs.Preference, speech.Catalog, bool) {
	p, err := app.Prefs.Get(ctx, chatID)
	if err != nil {
		app.log.Errorw("prefs get fail", "chat_id", chatID, "err", err)
		return nil, nil, false
	}
	c, err := app.Speech.Voices(ctx)
	if err != nil {
		app.log.Errorw("voice catalog fetch fail", "chat_id", chatID, "err", err)
		app.Notify.Notify(ctx, err, "voice catalog unavailable")
		return nil, nil, false
	}
	return p, c, true
}

// render edits the originating menu message on callbacks and sends a new
// message otherwise.
func (app *BotApp) render(chatID int64, cb *tgbotapi.CallbackQuery, text string, kb tgbotapi.InlineKeyboardMarkup) {
	if cb != nil && cb.Message != nil {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, cb.Message.MessageID, text, kb)
		edit.ParseMode = tgbotapi.ModeHTML
		if _, err := app.bot.Request(edit); err != nil &&
			!strings.Contains(err.Error(), "message is not modified") {
			app.log.Warnw("menu edit fail", "chat_id", chatID, "err", err)
		}
		return
	}

	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeHTML
	m.ReplyMarkup = kb
	if _, err := app.bot.Send(m); err != nil {
		app.log.Warnw("menu send fail", "chat_id", chatID, "err", err)
	}
}
