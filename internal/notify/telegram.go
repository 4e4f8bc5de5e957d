package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/BruksfildServices01/zaban-academy/internal/observability"
)

// TelegramNotifier delivers operator messages to a fixed chat. Message.To
// is ignored; the chat is the operator channel.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) Notify(_ context.Context, msg Message) error {
	_, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, msg.Text))
	if err != nil {
		observability.CaptureErr(err)
		return fmt.Errorf("telegram: %w", err)
	}
	return nil
}
