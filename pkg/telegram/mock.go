package telegram

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Mock is a testify mock of Notifier for use by callers' tests.
type Mock struct {
	mock.Mock
}

var _ Notifier = (*Mock)(nil)

func (m *Mock) SendMessage(ctx context.Context, chatID, text, parseMode string) error {
	args := m.Called(ctx, chatID, text, parseMode)
	return args.Error(0)
}
