// Package contacts holds the emergency contact list.
package contacts

import (
	"strings"
	"sync"
)

// Book is an append-only list of phone numbers. Numbers are not validated or
// deduplicated and there is no removal.
type Book struct {
	mu      sync.RWMutex
	numbers []string
}

// NewBook returns a book seeded with the given numbers. Blank seeds are skipped.
func NewBook(seed ...string) *Book {
	b := &Book{}
	for _, n := range seed {
		b.Add(n)
	}
	return b
}

// Add appends a number. It reports false for a blank number, which is ignored
// the same way a cancelled prompt is.
func (b *Book) Add(number string) bool {
	number = strings.TrimSpace(number)
	if number == "" {
		return false
	}
	b.mu.Lock()
	b.numbers = append(b.numbers, number)
	b.mu.Unlock()
	return true
}

// List returns a copy of the numbers in insertion order.
func (b *Book) List() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.numbers))
	copy(out, b.numbers)
	return out
}

// Len returns the number of contacts.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.numbers)
}
