package state

import "sync"

// Mock is an in-memory test double for Store.
type Mock struct {
	mu      sync.Mutex
	entries []Entry
	saves   int
	closed  bool
}

// NewMock creates a mock holding entries.
func NewMock(entries ...Entry) *Mock {
	return &Mock{entries: entries}
}

func (m *Mock) Load() ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...), nil
}

func (m *Mock) Save(entries []Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]Entry(nil), entries...)
	m.saves++
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Saves returns the number of Save calls.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ Interface = (*Mock)(nil)
