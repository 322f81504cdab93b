package app

import (
	"context"

	"homework_status_bot/internal/domain/homework"

	"github.com/stretchr/testify/mock"
	"gopkg.in/telebot.v3"
)

// MockTelegramClient is a mock implementation of the telegram client
type MockTelegramClient struct {
	mock.Mock
}

func (m *MockTelegramClient) SendMessage(chatID int64, text string, options *telebot.SendOptions) error {
	args := m.Called(chatID, text, options)
	return args.Error(0)
}

// MockFetcher is a mock implementation of the homework API client
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, fromDate int64) (homework.Payload, error) {
	args := m.Called(ctx, fromDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return homework.Payload(args.String(0)), args.Error(1)
}

// fakeScheduler runs the job a fixed number of times on Start and then
// cancels the poller's context.
type fakeScheduler struct {
	runs    int
	cancel  context.CancelFunc
	ran     int
	stopped bool
}

func (s *fakeScheduler) Start(job func()) {
	for i := 0; i < s.runs; i++ {
		job()
		s.ran++
	}
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *fakeScheduler) Stop() {
	s.stopped = true
}
