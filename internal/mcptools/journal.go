package mcptools

import (
	"context"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sef-community/sefctl/internal/export"
	"github.com/sef-community/sefctl/internal/journal"
)

func toJournalResult(e journal.Entry) JournalResult {
	return JournalResult{
		ID:        e.ID,
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Title:     e.Title,
		Preview:   e.Preview(200),
	}
}

// AddJournalHandler returns the handler function for the add_journal_entry MCP tool.
func AddJournalHandler(store *journal.Store) func(ctx context.Context, req *mcp.CallToolRequest, input AddJournalInput) (*mcp.CallToolResult, JournalResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddJournalInput) (*mcp.CallToolResult, JournalResult, error) {
		return nil, toJournalResult(store.Add(input.Title, input.Content)), nil
	}
}

// ListJournalHandler returns the handler function for the list_journal MCP tool.
func ListJournalHandler(store *journal.Store) func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListJournalOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListJournalOutput, error) {
		entries := limitTo(store.Newest(), input.Limit)
		results := make([]JournalResult, len(entries))
		for i, e := range entries {
			results[i] = toJournalResult(e)
		}
		return nil, ListJournalOutput{Entries: results}, nil
	}
}

// GetJournalHandler returns the handler function for the get_journal_entry MCP tool.
func GetJournalHandler(store *journal.Store) func(ctx context.Context, req *mcp.CallToolRequest, input GetJournalInput) (*mcp.CallToolResult, JournalEntryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetJournalInput) (*mcp.CallToolResult, JournalEntryOutput, error) {
		e, err := store.Get(strings.TrimSpace(input.ID))
		if err != nil {
			return nil, JournalEntryOutput{}, err
		}
		return nil, JournalEntryOutput{
			ID:        e.ID,
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Title:     e.Title,
			Content:   e.Content,
		}, nil
	}
}

// ExportJournalHandler returns the handler function for the export_journal MCP tool.
func ExportJournalHandler(store *journal.Store, exportDir string) func(ctx context.Context, req *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		path, err := resolvePath(exportDir, input.Path)
		if err != nil {
			return nil, ExportOutput{}, err
		}
		entries := store.Entries()
		if _, err := export.JournalToFile(path, entries); err != nil {
			return nil, ExportOutput{}, err
		}
		return nil, ExportOutput{Path: path, Entries: len(entries)}, nil
	}
}
