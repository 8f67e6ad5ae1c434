package store

import (
	"context"
	"sync"
)

// memorySlotStorage keeps payloads in process memory. Contents are lost on
// restart.
type memorySlotStorage struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemorySlotStorage() SlotStorage {
	return &memorySlotStorage{slots: make(map[string][]byte)}
}

func (m *memorySlotStorage) Get(_ context.Context, slot string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.slots[slot]
	if !ok {
		return nil, ErrSlotNotFound
	}

	return append([]byte(nil), payload...), nil
}

func (m *memorySlotStorage) Set(_ context.Context, slot string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[slot] = append([]byte(nil), payload...)
	return nil
}
