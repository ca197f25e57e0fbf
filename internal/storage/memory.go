package storage

import "sync"

// MemoryRecords is an in-process record store with the same contract as
// Records. It backs play without a database and the package tests.
type MemoryRecords struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryRecords returns an empty in-memory record store.
func NewMemoryRecords() *MemoryRecords {
	return &MemoryRecords{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value, or ErrNotFound.
func (m *MemoryRecords) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value.
func (m *MemoryRecords) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}
