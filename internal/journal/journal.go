// Package journal provides journal entries and the in-memory journal store.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8
)

// ErrNotFound is returned when a list index does not map to an entry.
var ErrNotFound = errors.New("journal entry not found")

// Entry is a single journal entry.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
}

// NewID generates a new nanoid for a journal entry.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// Label is the single-line list representation: "YYYY-MM-DD HH:MM - title".
func (e Entry) Label() string {
	return fmt.Sprintf("%s - %s", e.Timestamp.Local().Format("2006-01-02 15:04"), e.Title)
}

// Preview returns a single-line preview of the content, at most maxLen
// characters long.
func (e Entry) Preview(maxLen int) string {
	return truncate(strings.ReplaceAll(e.Content, "\n", " "), maxLen)
}

// truncate shortens s to at most maxLen runes, ending in "..." when there is
// room for it.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// DraftTemplate is the initial buffer handed to $EDITOR for a new entry.
const DraftTemplate = "---\ntitle: \n---\n\n"

type draftMatter struct {
	Title string `yaml:"title"`
}

// ParseDraft splits an editor buffer into title and content. The title comes
// from the YAML front-matter; a buffer without front-matter is all content.
func ParseDraft(text string) (title, content string, err error) {
	var fm draftMatter
	rest, err := frontmatter.Parse(strings.NewReader(text), &fm)
	if err != nil {
		return "", "", fmt.Errorf("parsing draft front-matter: %w", err)
	}
	return strings.TrimSpace(fm.Title), strings.TrimSpace(string(rest)), nil
}
