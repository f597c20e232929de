package error_notificator

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Infra struct {
	bot            *tgbotapi.BotAPI
	operatorChatID int64
	log            *zap.SugaredLogger
}

// NewInfra builds the operator notifier. With operatorChatID == 0 the
// notifier degrades to log-only.
func NewInfra(operatorChatID int64, log *zap.SugaredLogger) *Infra {
	return &Infra{operatorChatID: operatorChatID, log: log}
}

// SetBot injects the bot once it has been initialized.
func (i *Infra) SetBot(bot *tgbotapi.BotAPI) {
	i.bot = bot
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	i.log.Errorw("operator notification", "err", err, "details", details)

	if i.bot == nil || i.operatorChatID == 0 {
		return nil
	}

	text := fmt.Sprintf("❗ Bot error\n\nError: %v\n\nDetails: %s", err, details)
	if _, sendErr := i.bot.Send(tgbotapi.NewMessage(i.operatorChatID, text)); sendErr != nil {
		i.log.Warnw("operator notify send fail", "err", sendErr)
		return sendErr
	}
	return nil
}
