package keystore

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu   sync.RWMutex
	keys map[string][]byte
}

// NewMemoryRepository returns a process-local repository.
func NewMemoryRepository() SharedKeyRepository {
	return &memoryRepository{keys: make(map[string][]byte)}
}

func (m *memoryRepository) GetKey(_ context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	key, ok := m.keys[name]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return clone(key), nil
}

func (m *memoryRepository) SetKey(_ context.Context, name string, key []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	m.mu.Lock()
	m.keys[name] = clone(key)
	m.mu.Unlock()
	return nil
}

func (m *memoryRepository) DeleteKey(_ context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.keys, name)
	m.mu.Unlock()
	return nil
}

func (m *memoryRepository) GenerateKeyData() ([]byte, error) {
	return generateKeyData()
}
