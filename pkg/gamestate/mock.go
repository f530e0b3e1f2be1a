package gamestate

import (
	"context"
	"sync"
)

// MockBridge is an in-memory implementation of Bridge for testing
type MockBridge struct {
	ReadGameInfoFunc  func(ctx context.Context, key string) (string, error)
	WriteGameInfoFunc func(ctx context.Context, key, value string) error

	mu     sync.Mutex
	values map[string]string

	// Track calls for testing
	ReadCalls  []string
	WriteCalls []WriteCall
}

type WriteCall struct {
	Key   string
	Value string
}

// NewMockBridge creates a mock bridge preloaded with values
func NewMockBridge(values map[string]string) *MockBridge {
	m := &MockBridge{
		values:     make(map[string]string, len(values)),
		ReadCalls:  make([]string, 0),
		WriteCalls: make([]WriteCall, 0),
	}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// ReadGameInfo mocks a bridge read
func (m *MockBridge) ReadGameInfo(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	m.ReadCalls = append(m.ReadCalls, key)
	m.mu.Unlock()

	if m.ReadGameInfoFunc != nil {
		return m.ReadGameInfoFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// WriteGameInfo mocks a bridge write
func (m *MockBridge) WriteGameInfo(ctx context.Context, key, value string) error {
	m.mu.Lock()
	m.WriteCalls = append(m.WriteCalls, WriteCall{Key: key, Value: value})
	m.mu.Unlock()

	if m.WriteGameInfoFunc != nil {
		return m.WriteGameInfoFunc(ctx, key, value)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Set changes a value without recording a write call, the way the game
// process would update the channel behind the engine's back.
func (m *MockBridge) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Value returns the stored value for key.
func (m *MockBridge) Value(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

// Reset clears all call tracking
func (m *MockBridge) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReadCalls = make([]string, 0)
	m.WriteCalls = make([]WriteCall, 0)
}

// Ensure MockBridge implements Bridge interface
var _ Bridge = (*MockBridge)(nil)
