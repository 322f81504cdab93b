// internal/app/notifier.go
package app

import (
	"fmt"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Notifier delivers status messages to the configured chat.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         int64
	logger         logrus.FieldLogger
}

func NewNotifier(tc domainTelegram.Client, chatID int64, logger logrus.FieldLogger) *Notifier {
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger,
	}
}

// Send delivers text to the chat. Delivery failures are logged and never
// returned: a lost notification must not interrupt polling.
func (n *Notifier) Send(text string) {
	log := n.logger.WithField("chat_id", n.chatID)
	log.Debugf("Sending message to Telegram chat: %s", text)

	err := n.telegramClient.SendMessage(n.chatID, text, &telebot.SendOptions{ParseMode: telebot.ModeDefault})
	if err != nil {
		log.WithError(fmt.Errorf("%w: %w", homework.ErrDelivery, err)).Error("Failed to send message to Telegram chat")
		return
	}
	log.Debug("Message sent successfully")
}
