package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sef-community/sefctl/internal/export"
	"github.com/sef-community/sefctl/internal/mood"
)

func toMoodResult(e mood.Entry) MoodResult {
	return MoodResult{
		ID:      e.ID,
		Date:    e.DateString(),
		Mood:    e.Mood.String(),
		Ordinal: e.Mood.Ordinal(),
		Notes:   e.Notes,
	}
}

// AddMoodHandler returns the handler function for the add_mood MCP tool.
func AddMoodHandler(store *mood.Store) func(ctx context.Context, req *mcp.CallToolRequest, input AddMoodInput) (*mcp.CallToolResult, MoodResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddMoodInput) (*mcp.CallToolResult, MoodResult, error) {
		m, err := mood.Parse(input.Mood)
		if err != nil {
			return nil, MoodResult{}, err
		}
		date, err := parseDateOr(input.Date, time.Now())
		if err != nil {
			return nil, MoodResult{}, fmt.Errorf("invalid date %q: %w", input.Date, err)
		}
		return nil, toMoodResult(store.Add(date, m, input.Notes)), nil
	}
}

// ListMoodsHandler returns the handler function for the list_moods MCP tool.
func ListMoodsHandler(store *mood.Store) func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListMoodsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListMoodsOutput, error) {
		entries := limitTo(store.Entries(), input.Limit)
		results := make([]MoodResult, len(entries))
		for i, e := range entries {
			results[i] = toMoodResult(e)
		}
		return nil, ListMoodsOutput{Entries: results}, nil
	}
}

// ExportMoodsHandler returns the handler function for the export_moods MCP tool.
func ExportMoodsHandler(store *mood.Store, exportDir string) func(ctx context.Context, req *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		path, err := resolvePath(exportDir, input.Path)
		if err != nil {
			return nil, ExportOutput{}, err
		}
		entries := store.Entries()
		if _, err := export.MoodToFile(path, entries); err != nil {
			return nil, ExportOutput{}, err
		}
		return nil, ExportOutput{Path: path, Entries: len(entries)}, nil
	}
}
