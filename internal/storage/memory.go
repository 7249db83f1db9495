package storage

import (
	"context"
	"sync"
)

// MemoryKV is an in-memory KV used by tests and as an explicit ephemeral
// store. It honours the same contract as SQLiteKV, including (nil, nil)
// for absent keys.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryKV) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(key, value)
	return nil
}

func (m *MemoryKV) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryKV) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var current []byte
	if v, ok := m.data[key]; ok {
		current = make([]byte, len(v))
		copy(current, v)
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	m.set(key, next)
	return nil
}

// set stores a private copy so callers cannot mutate stored values.
func (m *MemoryKV) set(key string, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
}
