package store

import (
	"context"
	"sort"
	"sync"
)

// NewMemory returns a Persistence that keeps everything in process memory.
// Used by `ui --ephemeral` and by tests.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Memory is an in-process Persistence.
type Memory struct {
	mu       sync.Mutex
	data     map[string][]byte
	watchers []chan Event
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Write(key string, data []byte) error {
	m.mu.Lock()
	m.data[key] = append([]byte(nil), data...)
	m.mu.Unlock()
	m.notify(key)
	return nil
}

func (m *Memory) Erase(key string) error {
	m.mu.Lock()
	_, ok := m.data[key]
	delete(m.data, key)
	m.mu.Unlock()
	if ok {
		m.notify(key)
	}
	return nil
}

func (m *Memory) Keys(_ context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()
	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				close(ch)
				return
			}
		}
	}()
	return ch, nil
}

func (m *Memory) notify(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		select {
		case w <- Event{Key: key}:
		default:
		}
	}
}
