package cache

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/conversor/internal/domain/models"
)

type memoryEntry struct {
	quote     models.Quote
	expiresAt time.Time
}

// Memory is an in-process QuoteCache. Expired entries are evicted lazily
// on read.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory returns an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *Memory) Get(_ context.Context, from, to models.Currency) (models.Quote, bool, error) {
	key := Key(from, to)

	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return models.Quote{}, false, nil
	}
	if !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		if cur, still := m.entries[key]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return models.Quote{}, false, nil
	}
	return e.quote, true, nil
}

func (m *Memory) Set(_ context.Context, q models.Quote, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	m.entries[Key(q.From, q.To)] = memoryEntry{quote: q, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
