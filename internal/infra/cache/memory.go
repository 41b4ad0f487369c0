package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory in-process кэш с TTL
// Значения хранятся сериализованными в JSON, чтобы вызывающий код не мог изменить закэшированные данные
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory создает пустой in-memory кэш
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get читает значение по ключу в dest; возвращает false, если ключа нет или он истёк
func (m *Memory) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if !m.now().Before(entry.expiresAt) {
		m.mu.Lock()
		if current, ok := m.entries[key]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(entry.value, dest); err != nil {
		return false, fmt.Errorf("%w: key=%s: %v", ErrDecode, key, err)
	}

	return true, nil
}

// Set сохраняет значение с указанным TTL; TTL <= 0 не сохраняет ничего
func (m *Memory) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrEncode, key, err)
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{value: data, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()

	return nil
}

// Len возвращает количество записей (включая ещё не удалённые истёкшие)
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
