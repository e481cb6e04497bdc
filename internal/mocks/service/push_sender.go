package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockPushSender mocks service.PushSender.
type MockPushSender struct {
	mock.Mock
}

// NewMockPushSender creates the mock and asserts its expectations on cleanup.
func NewMockPushSender(t *testing.T) *MockPushSender {
	m := &MockPushSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPushSender) SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	args := m.Called(ctx, tokens, title, body, data)

	var invalid []string
	if v := args.Get(2); v != nil {
		invalid = v.([]string)
	}

	return args.Int(0), args.Int(1), invalid, args.Error(3)
}

func (m *MockPushSender) SendSingle(ctx context.Context, token, title, body string, data map[string]string) error {
	args := m.Called(ctx, token, title, body, data)

	return args.Error(0)
}
