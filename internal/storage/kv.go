package storage

import (
	"sync"
)

// KV is a string key-value store.
type KV interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
}

// UpdateFunc receives the current value (ok is false when absent) and
// returns the value to store.
type UpdateFunc func(value string, ok bool) (string, error)

// Updater is a KV that can read-modify-write a key atomically.
type Updater interface {
	KV
	Update(key string, fn UpdateFunc) error
}

// ScoreLog records finished games.
type ScoreLog interface {
	SaveScore(player string, score int) (int64, error)
}

// Memory is an in-process KV store. The zero value is ready to use.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get returns the value for key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

// Update applies fn to the current value of key under the store lock.
// If fn fails, the stored value is left unchanged.
func (m *Memory) Update(key string, fn UpdateFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		m.data = make(map[string]string)
	}
	old, ok := m.data[key]
	value, err := fn(old, ok)
	if err != nil {
		return err
	}
	m.data[key] = value
	return nil
}

var (
	_ Updater  = (*Memory)(nil)
	_ Updater  = (*Store)(nil)
	_ ScoreLog = (*Store)(nil)
)
