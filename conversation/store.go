package conversation

import (
	"context"
	"sync"
)

// StateReadWriter provides read/write access to session state using the
// context for routing.
type StateReadWriter interface {
	Read(ctx context.Context) (*State, bool, error)
	Write(ctx context.Context, state *State) error
	Remove(ctx context.Context) error
}

type sessionKeyContext struct{}

const defaultSessionKey = "default"

// WithSessionKey sets a routing key for state storage in the context.
func WithSessionKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, sessionKeyContext{}, key)
}

// SessionKeyFromContext gets the routing key from the context.
func SessionKeyFromContext(ctx context.Context) (string, bool) {
	value := ctx.Value(sessionKeyContext{})
	if value == nil {
		return "", false
	}
	key, ok := value.(string)
	return key, ok
}

func sessionKeyOrDefault(ctx context.Context) string {
	if key, ok := SessionKeyFromContext(ctx); ok && key != "" {
		return key
	}
	return defaultSessionKey
}

// MemoryStateReadWriter is an in-memory implementation for testing and
// single process deployments.
type MemoryStateReadWriter struct {
	mu     sync.RWMutex
	states map[string]*State
}

func NewMemoryStateReadWriter() *MemoryStateReadWriter {
	return &MemoryStateReadWriter{states: make(map[string]*State)}
}

func (m *MemoryStateReadWriter) Read(ctx context.Context) (*State, bool, error) {
	m.mu.RLock()
	state, ok := m.states[sessionKeyOrDefault(ctx)]
	m.mu.RUnlock()
	return state, ok, nil
}

func (m *MemoryStateReadWriter) Write(ctx context.Context, state *State) error {
	m.mu.Lock()
	m.states[sessionKeyOrDefault(ctx)] = state
	m.mu.Unlock()
	return nil
}

func (m *MemoryStateReadWriter) Remove(ctx context.Context) error {
	m.mu.Lock()
	delete(m.states, sessionKeyOrDefault(ctx))
	m.mu.Unlock()
	return nil
}
