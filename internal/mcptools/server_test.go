package mcptools_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sef-community/sefctl/internal/journal"
	"github.com/sef-community/sefctl/internal/mcptools"
	"github.com/sef-community/sefctl/internal/mood"
	"github.com/sef-community/sefctl/internal/wellness"
)

type stubAnalyzer struct{ text string }

func (s stubAnalyzer) Analyze(ctx context.Context, path string) string { return s.text }

func connect(t *testing.T, deps mcptools.Deps) *mcp.ClientSession {
	t.Helper()
	if deps.Moods == nil {
		deps.Moods = mood.NewStore()
	}
	if deps.Journal == nil {
		deps.Journal = journal.NewStore()
	}
	_, clientTransport := mcptools.NewMCPServer(deps)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("failed to connect client: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func call[T any](t *testing.T, session *mcp.ClientSession, name string, args any) (T, *mcp.CallToolResult) {
	t.Helper()
	var out T
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool %s failed: %v", name, err)
	}
	if result.IsError || result.StructuredContent == nil {
		return out, result
	}
	outputJSON, _ := json.Marshal(result.StructuredContent)
	if err := json.Unmarshal(outputJSON, &out); err != nil {
		t.Fatalf("failed to unmarshal %s output: %v", name, err)
	}
	return out, result
}

func TestMCPServer_Moods(t *testing.T) {
	store := mood.NewStore()
	session := connect(t, mcptools.Deps{Moods: store})

	t.Run("add_mood stores entry", func(t *testing.T) {
		out, result := call[mcptools.MoodResult](t, session, "add_mood",
			mcptools.AddMoodInput{Mood: "very happy", Date: "2024-04-01", Notes: "sunny"})
		if result.IsError {
			t.Fatalf("unexpected tool error: %+v", result.Content)
		}
		if out.Mood != "Very Happy" || out.Ordinal != 4 || out.Date != "2024-04-01" {
			t.Errorf("unexpected output: %+v", out)
		}
		if store.Len() != 1 {
			t.Errorf("expected 1 stored entry, got %d", store.Len())
		}
	})

	t.Run("add_mood rejects unknown label", func(t *testing.T) {
		_, result := call[mcptools.MoodResult](t, session, "add_mood", mcptools.AddMoodInput{Mood: "ecstatic"})
		if !result.IsError {
			t.Error("expected tool error for unknown mood")
		}
		if store.Len() != 1 {
			t.Errorf("expected nothing stored, got %d entries", store.Len())
		}
	})

	t.Run("list_moods keeps insertion order", func(t *testing.T) {
		call[mcptools.MoodResult](t, session, "add_mood", mcptools.AddMoodInput{Mood: "1", Date: "2024-03-01"})
		out, _ := call[mcptools.ListMoodsOutput](t, session, "list_moods", mcptools.ListInput{})
		if len(out.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(out.Entries))
		}
		if out.Entries[0].Date != "2024-04-01" || out.Entries[1].Mood != "Sad" {
			t.Errorf("unexpected order: %+v", out.Entries)
		}
	})

	t.Run("export_moods writes CSV", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "moods.csv")
		out, result := call[mcptools.ExportOutput](t, session, "export_moods", mcptools.ExportInput{Path: path})
		if result.IsError {
			t.Fatalf("unexpected tool error: %+v", result.Content)
		}
		if out.Entries != 2 {
			t.Errorf("expected 2 exported entries, got %d", out.Entries)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read export: %v", err)
		}
		if !strings.HasPrefix(string(data), "Date,Mood,Notes\n2024-04-01,Very Happy,sunny\n") {
			t.Errorf("unexpected CSV: %q", string(data))
		}
	})

	t.Run("export_moods requires path", func(t *testing.T) {
		_, result := call[mcptools.ExportOutput](t, session, "export_moods", mcptools.ExportInput{})
		if !result.IsError {
			t.Error("expected tool error for empty path")
		}
	})
}

func TestMCPServer_Journal(t *testing.T) {
	store := journal.NewStore()
	dir := t.TempDir()
	session := connect(t, mcptools.Deps{Journal: store, ExportDir: dir})

	call[mcptools.JournalResult](t, session, "add_journal_entry", mcptools.AddJournalInput{Title: "First", Content: "one"})
	added, _ := call[mcptools.JournalResult](t, session, "add_journal_entry", mcptools.AddJournalInput{Title: "Second", Content: "two"})
	if added.ID == "" || added.Title != "Second" {
		t.Errorf("unexpected add output: %+v", added)
	}

	list, _ := call[mcptools.ListJournalOutput](t, session, "list_journal", mcptools.ListInput{Limit: 1})
	if len(list.Entries) != 1 || list.Entries[0].Title != "Second" {
		t.Errorf("expected newest entry only, got %+v", list.Entries)
	}

	out, result := call[mcptools.ExportOutput](t, session, "export_journal", mcptools.ExportInput{Path: "journal.txt"})
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result.Content)
	}
	if out.Path != filepath.Join(dir, "journal.txt") {
		t.Errorf("expected relative path under export dir, got %q", out.Path)
	}
	data, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "Title: First\nContent:\none\n") {
		t.Errorf("unexpected journal export: %q", string(data))
	}
}

func TestMCPServer_GetJournalEntry(t *testing.T) {
	session := connect(t, mcptools.Deps{Journal: journal.NewStore()})

	content := strings.Repeat("ü", 300)
	added, _ := call[mcptools.JournalResult](t, session, "add_journal_entry", mcptools.AddJournalInput{Title: "Grüße", Content: content})
	if !utf8.ValidString(added.Preview) || utf8.RuneCountInString(added.Preview) != 200 {
		t.Errorf("expected a 200-character preview, got %d runes (valid=%v)",
			utf8.RuneCountInString(added.Preview), utf8.ValidString(added.Preview))
	}

	got, result := call[mcptools.JournalEntryOutput](t, session, "get_journal_entry", mcptools.GetJournalInput{ID: added.ID})
	if result.IsError {
		t.Fatalf("unexpected tool error: %+v", result.Content)
	}
	if got.Title != "Grüße" || got.Content != content {
		t.Errorf("unexpected entry: title %q, %d content bytes", got.Title, len(got.Content))
	}

	_, result = call[mcptools.JournalEntryOutput](t, session, "get_journal_entry", mcptools.GetJournalInput{ID: "missing"})
	if !result.IsError {
		t.Error("expected an error for an unknown ID")
	}
}

func TestMCPServer_Wellness(t *testing.T) {
	session := connect(t, mcptools.Deps{})

	res, _ := call[mcptools.CrisisResourcesOutput](t, session, "crisis_resources", mcptools.EmptyInput{})
	if len(res.CrisisLines) != len(wellness.CrisisLines()) || len(res.Resources) != len(wellness.Resources()) {
		t.Errorf("unexpected resources: %+v", res)
	}

	aff, _ := call[mcptools.AffirmationOutput](t, session, "daily_affirmation", mcptools.AffirmationInput{Date: "2024-01-15"})
	if aff.Date != "2024-01-15" || aff.Affirmation == "" {
		t.Errorf("unexpected affirmation: %+v", aff)
	}
}

func TestMCPServer_AnalyzeImageRegistration(t *testing.T) {
	t.Run("not registered without analyzer", func(t *testing.T) {
		session := connect(t, mcptools.Deps{})
		tools, err := session.ListTools(context.Background(), nil)
		if err != nil {
			t.Fatalf("ListTools: %v", err)
		}
		for _, tool := range tools.Tools {
			if tool.Name == "analyze_image" {
				t.Error("analyze_image should not be registered")
			}
		}
	})

	t.Run("returns analysis text", func(t *testing.T) {
		session := connect(t, mcptools.Deps{Analyzer: stubAnalyzer{text: "Error: status 401"}})
		out, result := call[mcptools.AnalyzeImageOutput](t, session, "analyze_image", mcptools.AnalyzeImageInput{Path: "face.jpg"})
		if result.IsError {
			t.Fatalf("unexpected tool error: %+v", result.Content)
		}
		if out.Analysis != "Error: status 401" {
			t.Errorf("unexpected analysis: %q", out.Analysis)
		}
	})
}
