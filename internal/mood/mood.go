// Package mood provides mood labels, mood entries and the in-memory mood store.
package mood

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Mood is one of the five fixed mood labels. Its integer value is the
// ordinal used for charting.
type Mood int

const (
	VerySad Mood = iota
	Sad
	Neutral
	Happy
	VeryHappy
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// ErrUnknownMood is returned when a string does not name one of the five moods.
var ErrUnknownMood = errors.New("unknown mood")

var labels = [...]string{"Very Sad", "Sad", "Neutral", "Happy", "Very Happy"}

// All returns the five moods in ordinal order.
func All() []Mood {
	return []Mood{VerySad, Sad, Neutral, Happy, VeryHappy}
}

// Labels returns the five mood labels in ordinal order.
func Labels() []string {
	out := make([]string, len(labels))
	copy(out, labels[:])
	return out
}

// String returns the display label.
func (m Mood) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mood(%d)", int(m))
	}
	return labels[m]
}

// Ordinal returns the chart position 0-4.
func (m Mood) Ordinal() int { return int(m) }

// Valid reports whether m is one of the five moods.
func (m Mood) Valid() bool { return m >= VerySad && m <= VeryHappy }

// Parse accepts a label ("Very Happy", "very-happy", "very_happy") in any
// case, or an ordinal digit "0".."4".
func Parse(s string) (Mood, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(norm); err == nil {
		m := Mood(n)
		if !m.Valid() {
			return 0, fmt.Errorf("%w: ordinal %d out of range 0-4", ErrUnknownMood, n)
		}
		return m, nil
	}
	norm = strings.NewReplacer("-", " ", "_", " ").Replace(norm)
	norm = strings.Join(strings.Fields(norm), " ")
	for i, l := range labels {
		if strings.ToLower(l) == norm {
			return Mood(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownMood, s, strings.Join(Labels(), ", "))
}

// MarshalText encodes the mood as its label.
func (m Mood) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: ordinal %d", ErrUnknownMood, int(m))
	}
	return []byte(labels[m]), nil
}

// UnmarshalText decodes a label or ordinal.
func (m *Mood) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Entry is a single recorded mood.
type Entry struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Mood  Mood      `json:"mood"`
	Notes string    `json:"notes"`
}

// NewID generates a new nanoid for a mood entry.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// NormalizeDate truncates t to midnight local time.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// DateString formats the entry date as YYYY-MM-DD.
func (e Entry) DateString() string {
	return e.Date.Format("2006-01-02")
}
