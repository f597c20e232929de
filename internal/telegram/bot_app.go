package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/voicepilot/voicepilot/internal/ai"
	"github.com/voicepilot/voicepilot/internal/asr"
	"github.com/voicepilot/voicepilot/internal/error_notificator"
	"github.com/voicepilot/voicepilot/internal/jobs"
	"github.com/voicepilot/voicepilot/internal/prefs"
	"github.com/voicepilot/voicepilot/internal/records"
	"github.com/voicepilot/voicepilot/internal/speech"
	"github.com/voicepilot/voicepilot/internal/storage"
)

// User-visible strings.
const (
	MsgWelcome = "Hi! Send me a text or voice message and I'll answer. " +
		"Use /settings to pick a voice, a conversation style and toggle spoken replies."
	MsgASRFailed    = "Could not connect to AssemblyAI API. Try again later."
	MsgAIFailed     = "Something went wrong while answering. Try again later."
	MsgNoLastReply  = "I can't remember our last conversation, sorry!"
	MsgHistoryReset = "Conversation history cleared."
	MsgSayUsage     = "Please use '/say message' to send the message you want to convert to speech"
)

type BotApp struct {
	bot *tgbotapi.BotAPI

	Prefs     prefs.Service
	Speech    *speech.Service
	ASR       *asr.Service
	AI        *ai.Service
	Records   records.Service
	Indicator *jobs.Controller
	Archive   storage.Client // optional, nil disables voice archiving
	Notify    error_notificator.Notificator

	log *zap.SugaredLogger
}

func NewBotApp(
	bot *tgbotapi.BotAPI,
	prefsSvc prefs.Service,
	speechSvc *speech.Service,
	asrSvc *asr.Service,
	aiSvc *ai.Service,
	recordsSvc records.Service,
	indicator *jobs.Controller,
	archive storage.Client,
	notify error_notificator.Notificator,
	log *zap.SugaredLogger,
) *BotApp {
	return &BotApp{
		bot:       bot,
		Prefs:     prefsSvc,
		Speech:    speechSvc,
		ASR:       asrSvc,
		AI:        aiSvc,
		Records:   recordsSvc,
		Indicator: indicator,
		Archive:   archive,
		Notify:    notify,
		log:       log,
	}
}

// ActionNotifier adapts the bot to jobs.Notifier so the indicator
// controller can be wired before the BotApp exists.
type ActionNotifier struct {
	Bot *tgbotapi.BotAPI
}

func (n *ActionNotifier) SendAction(chatID int64, action string) error {
	_, err := n.Bot.Request(tgbotapi.NewChatAction(chatID, action))
	return err
}
