package cache

import (
	"context"
	"sync"
	"time"
)

const defaultCleanupInterval = time.Minute

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// Memory потокобезопасный in-memory кеш с TTL и фоновой очисткой.
// Значения по ключу перезаписываются (last-write-wins); гонка двух
// запросов на одном промахе даёт лишнюю работу, но не порчу данных.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewMemory создает in-memory кеш и запускает фоновую очистку
// истёкших записей
func NewMemory() *Memory {
	m := &Memory{
		entries: make(map[string]memoryEntry),
		stop:    make(chan struct{}),
	}

	m.wg.Add(1)
	go m.cleanupLoop(defaultCleanupInterval)

	return m
}

// Close останавливает фоновую очистку
func (m *Memory) Close() {
	close(m.stop)
	m.wg.Wait()
}

// Get возвращает payload по ключу; истёкшая запись считается промахом
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.payload, true
}

// Set сохраняет payload с заданным TTL
func (m *Memory) Set(_ context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
	m.mu.Unlock()
	return nil
}

// Size возвращает количество записей (включая ещё не вычищенные истёкшие)
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory) cleanupLoop(interval time.Duration) {
	defer m.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.cleanupExpired()
		}
	}
}

func (m *Memory) cleanupExpired() {
	now := time.Now()

	m.mu.Lock()
	for key, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
}

var _ Cache = (*Memory)(nil)
