package repository

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryRepo keeps the blob in process memory. Used for unit tests and as a
// last-resort fallback when neither Redis nor Mongo is configured (data does
// not survive a restart in that mode).
type MemoryRepo struct {
	mu          sync.RWMutex
	raw         []byte
	stored      bool
	quarantined map[string][]byte
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{quarantined: make(map[string][]byte)}
}

func (m *MemoryRepo) Load(ctx context.Context) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.stored {
		return nil, false, nil
	}
	out := make([]byte, len(m.raw))
	copy(out, m.raw)
	return out, true, nil
}

func (m *MemoryRepo) Store(ctx context.Context, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = make([]byte, len(raw))
	copy(m.raw, raw)
	m.stored = true
	return nil
}

func (m *MemoryRepo) Quarantine(ctx context.Context, raw []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := fmt.Sprintf("corrupt-%d", time.Now().UnixNano())
	m.quarantined[key] = append([]byte(nil), raw...)
	return nil
}

// Quarantined returns the preserved corrupt blobs (test helper).
func (m *MemoryRepo) Quarantined() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte, len(m.quarantined))
	for k, v := range m.quarantined {
		out[k] = v
	}
	return out
}
