package mood

import (
	"sync"
	"time"
)

// Point is one chart sample: the entry date and its mood ordinal.
type Point struct {
	Date    time.Time `json:"date"`
	Ordinal int       `json:"ordinal"`
}

// Store is an append-only, process-lifetime sequence of mood entries.
// The zero value is ready to use.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a mood for the given date. The date is normalized to local
// midnight. No other validation is performed.
func (s *Store) Add(date time.Time, m Mood, notes string) Entry {
	id, err := NewID()
	if err != nil {
		// nanoid only fails on a bad alphabet/length
		panic("mood: generating ID: " + err.Error())
	}
	e := Entry{
		ID:    id,
		Date:  NormalizeDate(date),
		Mood:  m,
		Notes: notes,
	}

	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()
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

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Series maps every entry, in insertion order, to its chart point.
func (s *Store) Series() []Point {
	return SeriesOf(s.Entries())
}

// SeriesOf maps entries to chart points without a store.
func SeriesOf(entries []Entry) []Point {
	points := make([]Point, len(entries))
	for i, e := range entries {
		points[i] = Point{Date: e.Date, Ordinal: e.Mood.Ordinal()}
	}
	return points
}
