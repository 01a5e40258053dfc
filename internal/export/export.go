// Package export writes the mood and journal stores to flat files.
package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sef-community/sefctl/internal/journal"
	"github.com/sef-community/sefctl/internal/mood"
)

// MoodHeader is the first line of every mood export.
const MoodHeader = "Date,Mood,Notes"

// WriteMoodCSV writes entries as CSV. Commas inside notes are replaced with
// semicolons; no other quoting is applied.
func WriteMoodCSV(w io.Writer, entries []mood.Entry) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, MoodHeader)
	for _, e := range entries {
		fmt.Fprintf(bw, "%s,%s,%s\n", e.DateString(), e.Mood, strings.ReplaceAll(e.Notes, ",", ";"))
	}
	return bw.Flush()
}

// WriteJournalText writes entries, in insertion order, as plain-text blocks.
func WriteJournalText(w io.Writer, entries []journal.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(bw, "Date: %s\n", e.Timestamp.Local().Format("2006-01-02 15:04"))
		fmt.Fprintf(bw, "Title: %s\n", e.Title)
		fmt.Fprintf(bw, "Content:\n%s\n\n", e.Content)
	}
	return bw.Flush()
}

// MoodToFile writes a mood export to path. An empty path means the user
// cancelled; nothing is written and written is false.
func MoodToFile(path string, entries []mood.Entry) (written bool, err error) {
	return toFile(path, func(w io.Writer) error { return WriteMoodCSV(w, entries) })
}

// JournalToFile writes a journal export to path. An empty path is a no-op.
func JournalToFile(path string, entries []journal.Entry) (written bool, err error) {
	return toFile(path, func(w io.Writer) error { return WriteJournalText(w, entries) })
}

func toFile(path string, write func(io.Writer) error) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("creating export file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return false, fmt.Errorf("writing export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing export file: %w", err)
	}
	return true, nil
}

// ErrBadHeader is returned by ReadMoodCSV when the first line is not MoodHeader.
var ErrBadHeader = errors.New("not a mood export: missing Date,Mood,Notes header")

// ReadMoodCSV parses a file written by WriteMoodCSV. Notes keep their
// semicolons; the original commas are not recoverable.
func ReadMoodCSV(r io.Reader) ([]mood.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrBadHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if strings.Join(header, ",") != MoodHeader {
		return nil, ErrBadHeader
	}

	var entries []mood.Entry
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("line %d: expected at least 2 fields, got %d", line, len(rec))
		}
		date, err := time.ParseInLocation("2006-01-02", rec[0], time.Local)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q", line, rec[0])
		}
		m, err := mood.Parse(rec[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		notes := ""
		if len(rec) > 2 {
			notes = strings.Join(rec[2:], ";")
		}
		entries = append(entries, mood.Entry{Date: date, Mood: m, Notes: notes})
	}
	return entries, nil
}
