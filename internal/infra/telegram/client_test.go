package telegram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	args := m.Called(to, what, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*telebot.Message), args.Error(1)
}

func TestTelebotAdapter_SendMessage(t *testing.T) {
	t.Run("sends text to the chat id", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", telebot.ChatID(-100123), "hello", mock.Anything).
			Return(&telebot.Message{ID: 1}, nil)

		err := NewTelebotAdapter(sender).SendMessage(-100123, "hello", nil)

		require.NoError(t, err)
		sender.AssertExpectations(t)
		opts := sender.Calls[0].Arguments.Get(2).([]interface{})
		require.Len(t, opts, 1)
		assert.IsType(t, &telebot.SendOptions{}, opts[0])
	})

	t.Run("returns the bot error", func(t *testing.T) {
		sender := new(MockSender)
		sendErr := errors.New("telegram: chat not found (400)")
		sender.On("Send", telebot.ChatID(42), "hello", mock.Anything).Return(nil, sendErr)

		err := NewTelebotAdapter(sender).SendMessage(42, "hello", &telebot.SendOptions{DisableNotification: true})

		assert.ErrorIs(t, err, sendErr)
	})
}

func TestNewBot(t *testing.T) {
	t.Run("does not contact Telegram", func(t *testing.T) {
		// An unroutable API URL would fail any network call made during creation.
		t.Setenv("HTTPS_PROXY", "http://127.0.0.1:1")

		bot, err := NewBot("123456:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", nil)

		require.NoError(t, err)
		require.NotNil(t, bot)
		assert.Equal(t, "123456:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", bot.Token)
	})
}
