// internal/infra/telegram/client.go
package telegram

import (
	"gopkg.in/telebot.v3"
)

// Sender is the part of *telebot.Bot the adapter needs.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot Sender
}

func NewTelebotAdapter(b Sender) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(chatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	// ChatID works for private chats, groups and channels alike.
	_, err := tba.bot.Send(telebot.ChatID(chatID), text, options)
	return err
}

// NewBot creates a send-only bot. It runs offline: no getMe call is made,
// so an unreachable Telegram API at startup is not fatal. A bad token
// shows up later as a delivery error.
func NewBot(token string, onError func(error, telebot.Context)) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{
		Token:   token,
		Offline: true,
		OnError: onError,
	})
}
