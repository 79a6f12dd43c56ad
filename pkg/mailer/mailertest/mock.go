// Package mailertest provides a testify mock of mailer.Sender.
package mailertest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/neonova/storefront/pkg/mailer"
)

// MockSender records every Send call.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *mailer.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// Sent returns the emails passed to Send, in call order.
func (m *MockSender) Sent() []*mailer.Email {
	var out []*mailer.Email
	for _, call := range m.Calls {
		if call.Method != "Send" {
			continue
		}
		if email, ok := call.Arguments.Get(1).(*mailer.Email); ok {
			out = append(out, email)
		}
	}
	return out
}
