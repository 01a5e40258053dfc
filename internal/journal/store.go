package journal

import (
	"fmt"
	"sync"
	"time"
)

// Store is an append-only, process-lifetime sequence of journal entries.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	now     func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Add appends an entry stamped with the current time.
func (s *Store) Add(title, content string) Entry {
	return s.AddEntry(Entry{Title: title, Content: content})
}

// AddEntry appends e, filling in ID and Timestamp when they are empty.
func (s *Store) AddEntry(e Entry) Entry {
	if e.ID == "" {
		id, err := NewID()
		if err != nil {
			panic("journal: generating ID: " + err.Error())
		}
		e.ID = id
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e.Timestamp.IsZero() {
		now := time.Now
		if s.now != nil {
			now = s.now
		}
		e.Timestamp = now()
	}
	s.entries = append(s.entries, e)
	return e
}

// Entries returns a copy of all entries in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Newest returns all entries, most recent first.
func (s *Store) Newest() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	return out
}

// AtListIndex resolves an index into the Newest listing back to the stored entry.
func (s *Store) AtListIndex(i int) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos := len(s.entries) - 1 - i
	if i < 0 || pos < 0 {
		return Entry{}, fmt.Errorf("%w: list index %d", ErrNotFound, i)
	}
	return s.entries[pos], nil
}

// Get looks an entry up by ID.
func (s *Store) Get(id string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
