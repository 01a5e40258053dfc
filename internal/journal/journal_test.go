package journal

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func fixedClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func TestNewestFirst(t *testing.T) {
	s := NewStore()
	s.now = fixedClock(time.Date(2026, 2, 1, 9, 0, 0, 0, time.Local))

	s.Add("first", "one")
	s.Add("second", "two")
	latest := s.Add("third", "three")

	list := s.Newest()
	if len(list) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(list))
	}
	if list[0].ID != latest.ID {
		t.Errorf("expected newest entry first, got %q", list[0].Title)
	}
	for i := 1; i < len(list); i++ {
		if list[i].Timestamp.After(list[i-1].Timestamp) {
			t.Errorf("entries not newest-first at index %d", i)
		}
	}
}

func TestAtListIndexRoundTrip(t *testing.T) {
	s := NewStore()
	s.now = fixedClock(time.Date(2026, 2, 1, 9, 0, 0, 0, time.Local))

	s.Add("old", "old content")
	added := s.Add("Rough day", "Talked to a friend.\nFelt better.")

	got, err := s.AtListIndex(0)
	if err != nil {
		t.Fatalf("AtListIndex(0): %v", err)
	}
	if got != added {
		t.Errorf("AtListIndex(0) = %+v, want %+v", got, added)
	}

	oldest, err := s.AtListIndex(1)
	if err != nil {
		t.Fatalf("AtListIndex(1): %v", err)
	}
	if oldest.Title != "old" {
		t.Errorf("AtListIndex(1) title = %q, want %q", oldest.Title, "old")
	}
}

func TestAtListIndexOutOfRange(t *testing.T) {
	s := NewStore()
	s.Add("only", "")
	for _, i := range []int{-1, 1, 5} {
		if _, err := s.AtListIndex(i); !errors.Is(err, ErrNotFound) {
			t.Errorf("AtListIndex(%d): expected ErrNotFound, got %v", i, err)
		}
	}
}

func TestAddEntryKeepsTimestamp(t *testing.T) {
	s := NewStore()
	ts := time.Date(2025, 12, 31, 23, 59, 0, 0, time.Local)
	e := s.AddEntry(Entry{Timestamp: ts, Title: "nye"})
	if !e.Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", e.Timestamp, ts)
	}
	if e.ID == "" {
		t.Error("expected generated ID")
	}
	if _, err := s.Get(e.ID); err != nil {
		t.Errorf("Get(%s): %v", e.ID, err)
	}
}

func TestLabel(t *testing.T) {
	e := Entry{Timestamp: time.Date(2026, 2, 3, 8, 5, 0, 0, time.Local), Title: "Morning"}
	if got, want := e.Label(), "2026-02-03 08:05 - Morning"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		maxLen  int
		want    string
	}{
		{"short", "Slept well", 60, "Slept well"},
		{"newlines flattened", "line one\nline two", 60, "line one line two"},
		{"ascii cut", "abcdefghij", 8, "abcde..."},
		{"multibyte cut", strings.Repeat("é", 40), 10, strings.Repeat("é", 7) + "..."},
		{"multibyte fits", strings.Repeat("é", 40), 40, strings.Repeat("é", 40)},
		{"tiny limit", "hello", 2, "he"},
		{"zero limit", "hello", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Entry{Content: tt.content}.Preview(tt.maxLen)
			if got != tt.want {
				t.Errorf("Preview(%d) = %q, want %q", tt.maxLen, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Preview(%d) produced invalid UTF-8: %q", tt.maxLen, got)
			}
			if n := utf8.RuneCountInString(got); n > tt.maxLen {
				t.Errorf("Preview(%d) is %d runes long", tt.maxLen, n)
			}
		})
	}
}

func TestParseDraft(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantTitle   string
		wantContent string
	}{
		{
			name:        "front-matter title",
			in:          "---\ntitle: Gratitude\n---\n\nThree good things.\n",
			wantTitle:   "Gratitude",
			wantContent: "Three good things.",
		},
		{
			name:        "no front-matter",
			in:          "Just writing today.",
			wantTitle:   "",
			wantContent: "Just writing today.",
		},
		{
			name:        "empty template",
			in:          DraftTemplate,
			wantTitle:   "",
			wantContent: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, content, err := ParseDraft(tt.in)
			if err != nil {
				t.Fatalf("ParseDraft: %v", err)
			}
			if title != tt.wantTitle {
				t.Errorf("title = %q, want %q", title, tt.wantTitle)
			}
			if content != tt.wantContent {
				t.Errorf("content = %q, want %q", content, tt.wantContent)
			}
		})
	}
}
