package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/voicepilot/voicepilot/internal/prefs"
	"github.com/voicepilot/voicepilot/internal/speech"
)

// Button row width for long choice lists.
const rowSize = 6

func chunkStrings(items []string, size int) [][]string {
	var chunks [][]string
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[i:end])
	}
	return chunks
}

// marked decorates the currently selected entry.
func marked(label, current string) string {
	if label == current {
		return fmt.Sprintf("» %s «", label)
	}
	return label
}

func backRow(buttons ...tgbotapi.InlineKeyboardButton) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(buttons...)
}

var (
	btnBackSettings  = tgbotapi.NewInlineKeyboardButtonData("« Back to Settings", tokSettings)
	btnBackLanguages = tgbotapi.NewInlineKeyboardButtonData("« Back to Languages", tokLangMenu)
)

func btnBackGenders(lang string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData("« Back to Genders", tokGenderMenu+"_"+lang)
}

func settingsRows() [][]tgbotapi.InlineKeyboardButton {
	return [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Language/Voice", tokLangMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Conversation style", tokStyleMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Toggle TTS", tokTTSMenu),
		),
	}
}

func languageRows(catalog speech.Catalog) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, chunk := range chunkStrings(catalog.Languages(), rowSize) {
		var row []tgbotapi.InlineKeyboardButton
		for _, lang := range chunk {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				strings.ToUpper(lang), tokGenderMenu+"_"+lang,
			))
		}
		rows = append(rows, row)
	}
	rows = append(rows, backRow(btnBackSettings))
	return rows
}

func genderRows(catalog speech.Catalog, lang string) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, gender := range catalog.Genders(lang) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				gender, fmt.Sprintf("%s_%s_%s", tokVoiceMenu, lang, gender),
			),
		))
	}
	rows = append(rows, backRow(btnBackLanguages, btnBackSettings))
	return rows
}

func voiceRows(catalog speech.Catalog, lang, gender, current string) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, chunk := range chunkStrings(catalog.VoicesFor(lang, gender), rowSize) {
		var row []tgbotapi.InlineKeyboardButton
		for _, voice := range chunk {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				marked(voice, current),
				fmt.Sprintf("%s_%s_%s_%s", tokVoiceSet, lang, gender, voice),
			))
		}
		rows = append(rows, row)
	}
	rows = append(rows, backRow(btnBackGenders(lang), btnBackLanguages, btnBackSettings))
	return rows
}

func styleRows(current string) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, style := range prefs.Styles() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				marked(style, current), tokStyleSet+"_"+style,
			),
		))
	}
	rows = append(rows, backRow(btnBackSettings))
	return rows
}

func ttsRows(enabled bool) [][]tgbotapi.InlineKeyboardButton {
	state := "OFF"
	if enabled {
		state = "ON"
	}
	return [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("TTS: "+state, tokTTSToggle),
		),
		backRow(btnBackSettings),
	}
}
