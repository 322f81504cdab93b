package app

import (
	"errors"
	"testing"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Send(t *testing.T) {
	t.Run("sends to the configured chat", func(t *testing.T) {
		client := new(MockTelegramClient)
		client.On("SendMessage", int64(777), "hello", mock.Anything).Return(nil)
		logger, hook := test.NewNullLogger()

		NewNotifier(client, 777, logger).Send("hello")

		client.AssertExpectations(t)
		for _, entry := range hook.AllEntries() {
			assert.NotEqual(t, logrus.ErrorLevel, entry.Level)
		}
	})

	t.Run("delivery failure is logged, not returned", func(t *testing.T) {
		client := new(MockTelegramClient)
		client.On("SendMessage", int64(777), "hello", mock.Anything).Return(errors.New("telegram: Forbidden: bot was blocked by the user (403)"))
		logger, hook := test.NewNullLogger()

		assert.NotPanics(t, func() { NewNotifier(client, 777, logger).Send("hello") })

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
		loggedErr, ok := entry.Data[logrus.ErrorKey].(error)
		require.True(t, ok)
		assert.ErrorIs(t, loggedErr, homework.ErrDelivery)
	})
}
