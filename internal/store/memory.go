package store

import (
	"context"
	"slices"
	"sync"
)

// collectionData holds the documents of one collection in insertion order.
type collectionData struct {
	ids  []string
	docs map[string][]byte
}

// MemoryBackend is a concurrency-safe in-memory Backend.
type MemoryBackend struct {
	mu sync.RWMutex

	data map[Collection]*collectionData

	// maxHistory caps the weather and recommendation collections (0 = unlimited).
	// The catalog is never trimmed.
	maxHistory int
}

// NewMemoryBackend creates a new MemoryBackend. If maxHistory is <= 0, history
// collections are unlimited.
func NewMemoryBackend(maxHistory int) *MemoryBackend {
	return &MemoryBackend{
		data:       make(map[Collection]*collectionData),
		maxHistory: maxHistory,
	}
}

func (m *MemoryBackend) collection(c Collection) *collectionData {
	col, ok := m.data[c]
	if !ok {
		col = &collectionData{docs: make(map[string][]byte)}
		m.data[c] = col
	}
	return col
}

// Put inserts or replaces a document and enforces retention.
func (m *MemoryBackend) Put(_ context.Context, c Collection, id string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	col := m.collection(c)
	if _, exists := col.docs[id]; !exists {
		col.ids = append(col.ids, id)
	}
	col.docs[id] = slices.Clone(doc)

	// Enforce retention by count.
	if c != Outfits && m.maxHistory > 0 && len(col.ids) > m.maxHistory {
		over := len(col.ids) - m.maxHistory
		for _, old := range col.ids[:over] {
			delete(col.docs, old)
		}
		col.ids = slices.Clone(col.ids[over:])
	}
	return nil
}

func (m *MemoryBackend) Get(_ context.Context, c Collection, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	col, ok := m.data[c]
	if !ok {
		return nil, ErrNotFound
	}
	doc, ok := col.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(doc), nil
}

func (m *MemoryBackend) Delete(_ context.Context, c Collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	col, ok := m.data[c]
	if !ok {
		return ErrNotFound
	}
	if _, ok := col.docs[id]; !ok {
		return ErrNotFound
	}
	delete(col.docs, id)
	col.ids = slices.DeleteFunc(col.ids, func(s string) bool { return s == id })
	return nil
}

// Scan iterates over a snapshot of the collection so fn may call back into the backend.
func (m *MemoryBackend) Scan(ctx context.Context, c Collection, reverse bool, fn func(id string, doc []byte) bool) error {
	m.mu.RLock()
	col, ok := m.data[c]
	if !ok {
		m.mu.RUnlock()
		return nil
	}
	ids := slices.Clone(col.ids)
	docs := make([][]byte, len(ids))
	for i, id := range ids {
		docs[i] = col.docs[id]
	}
	m.mu.RUnlock()

	if reverse {
		slices.Reverse(ids)
		slices.Reverse(docs)
	}
	for i, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !fn(id, slices.Clone(docs[i])) {
			return nil
		}
	}
	return nil
}

func (m *MemoryBackend) Count(_ context.Context, c Collection) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	col, ok := m.data[c]
	if !ok {
		return 0, nil
	}
	return len(col.ids), nil
}

func (m *MemoryBackend) Clear(_ context.Context, c Collection) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	col, ok := m.data[c]
	if !ok {
		return 0, nil
	}
	n := len(col.ids)
	delete(m.data, c)
	return n, nil
}

func (m *MemoryBackend) Ping(context.Context) error { return nil }

func (m *MemoryBackend) Close() error { return nil }
