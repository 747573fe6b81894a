package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// MemoryBackend is an in-process Backend used when Redis is disabled
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryBackend creates new in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return NewMemoryBackendWithClock(time.Now)
}

// NewMemoryBackendWithClock creates in-memory backend reading time from now
func NewMemoryBackendWithClock(now func() time.Time) *MemoryBackend {
	return &MemoryBackend{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return "", false, nil
	}

	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		m.mu.Lock()
		// re-check: a concurrent Set may have replaced the entry
		if current, ok := m.entries[key]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return "", false, nil
	}

	return entry.value, true, nil
}

// Set stores value; ttl <= 0 keeps it until deleted, as redis does
func (m *MemoryBackend) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}

func (m *MemoryBackend) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// Health always succeeds
func (m *MemoryBackend) Health(context.Context) error {
	return nil
}
