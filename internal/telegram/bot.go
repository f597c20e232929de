package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Run — main update loop. Updates arrive serially; each one is handled
// as its own goroutine, so long transcriptions never block the chat.
func (app *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	app.log.Infow("bot loop started", "username", app.bot.Self.UserName)

	for update := range updates {
		go app.routeUpdate(context.Background(), update)
	}
}

func (app *BotApp) routeUpdate(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.Message != nil:
		app.handleMessage(ctx, upd.Message)
	case upd.CallbackQuery != nil:
		app.handleCallback(ctx, upd.CallbackQuery)
	}
}

func (app *BotApp) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch {
	case msg.IsCommand():
		app.handleCommand(ctx, msg)
	case msg.Voice != nil:
		app.handleVoice(ctx, msg)
	case msg.Text != "":
		app.handleText(ctx, msg)
	}
}
