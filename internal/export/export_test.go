package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sef-community/sefctl/internal/journal"
	"github.com/sef-community/sefctl/internal/mood"
)

func TestWriteMoodCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMoodCSV(&buf, nil))
	assert.Equal(t, "Date,Mood,Notes\n", buf.String())
}

func TestWriteMoodCSVReplacesCommas(t *testing.T) {
	entries := []mood.Entry{
		{Date: time.Date(2026, 4, 2, 0, 0, 0, 0, time.Local), Mood: mood.Happy, Notes: "walk, sun, tea"},
		{Date: time.Date(2026, 4, 3, 0, 0, 0, 0, time.Local), Mood: mood.VerySad, Notes: ""},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteMoodCSV(&buf, entries))

	want := "Date,Mood,Notes\n" +
		"2026-04-02,Happy,walk; sun; tea\n" +
		"2026-04-03,Very Sad,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteJournalText(t *testing.T) {
	entries := []journal.Entry{
		{Timestamp: time.Date(2026, 4, 2, 20, 15, 0, 0, time.Local), Title: "Evening", Content: "Quiet night."},
		{Timestamp: time.Date(2026, 4, 3, 7, 5, 0, 0, time.Local), Title: "Morning", Content: "Slept well.\nRan 3k."},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteJournalText(&buf, entries))

	want := "Date: 2026-04-02 20:15\nTitle: Evening\nContent:\nQuiet night.\n\n" +
		"Date: 2026-04-03 07:05\nTitle: Morning\nContent:\nSlept well.\nRan 3k.\n\n"
	assert.Equal(t, want, buf.String())
}

func TestToFileEmptyPathIsNoop(t *testing.T) {
	written, err := MoodToFile("", []mood.Entry{{Mood: mood.Sad}})
	require.NoError(t, err)
	assert.False(t, written)

	written, err = JournalToFile("  ", nil)
	require.NoError(t, err)
	assert.False(t, written)
}

func TestMoodToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moods.csv")
	written, err := MoodToFile(path, nil)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Mood,Notes\n", string(data))
}

func TestJournalToFileBadDir(t *testing.T) {
	_, err := JournalToFile(filepath.Join(t.TempDir(), "missing", "j.txt"), nil)
	assert.Error(t, err)
}

func TestReadMoodCSV(t *testing.T) {
	store := mood.NewStore()
	store.Add(time.Date(2026, 4, 2, 0, 0, 0, 0, time.Local), mood.Neutral, "meh, ok")
	store.Add(time.Date(2026, 4, 3, 0, 0, 0, 0, time.Local), mood.VeryHappy, "")

	var buf bytes.Buffer
	require.NoError(t, WriteMoodCSV(&buf, store.Entries()))

	entries, err := ReadMoodCSV(&buf)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, mood.Neutral, entries[0].Mood)
	assert.Equal(t, "meh; ok", entries[0].Notes)
	assert.Equal(t, "2026-04-03", entries[1].DateString())
	for i, p := range mood.SeriesOf(entries) {
		assert.Equal(t, store.Series()[i].Ordinal, p.Ordinal)
	}
}

func TestReadMoodCSVRejects(t *testing.T) {
	tests := map[string]string{
		"empty":      "",
		"bad header": "When,How\n",
		"bad mood":   "Date,Mood,Notes\n2026-01-01,Elated,\n",
		"bad date":   "Date,Mood,Notes\n01/02/2026,Happy,\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadMoodCSV(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}
