package database

import "sync"

// MemoryStore is a RecordStore held entirely in process memory. It backs
// tests and can run the portal without a database file; nothing survives a
// restart.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]string)}
}

func (m *MemoryStore) GetRecord(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, found := m.records[key]
	return value, found, nil
}

func (m *MemoryStore) SetRecord(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = value
	return nil
}

func (m *MemoryStore) DeleteRecord(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}

var _ RecordStore = (*MemoryStore)(nil)
