package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sef-community/sefctl/internal/journal"
	"github.com/sef-community/sefctl/internal/mood"
)

// ImageAnalyzer runs one image analysis and returns the text or an "Error:" string.
type ImageAnalyzer interface {
	Analyze(ctx context.Context, imagePath string) string
}

// Deps are the stores and services exposed as tools.
type Deps struct {
	Moods   *mood.Store
	Journal *journal.Store
	// Analyzer is nil when analysis is not configured; analyze_image is then
	// not registered.
	Analyzer  ImageAnalyzer
	ExportDir string
}

// NewMCPServer creates an in-memory MCP server exposing the tools.
// Returns the server and a client transport for connecting to it.
func NewMCPServer(deps Deps) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(deps)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with all tools registered.
func CreateMCPServer(deps Deps) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sefctl",
		Version: "1.0.0",
	}, nil)

	// Mood tracker
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_mood",
		Description: "Record a mood (Very Sad, Sad, Neutral, Happy, Very Happy) for a date",
	}, AddMoodHandler(deps.Moods))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_moods",
		Description: "List recorded moods in the order they were added, with chart ordinals 0-4",
	}, ListMoodsHandler(deps.Moods))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_moods",
		Description: "Write recorded moods to a CSV file with header Date,Mood,Notes",
	}, ExportMoodsHandler(deps.Moods, deps.ExportDir))

	// Journal
	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_journal_entry",
		Description: "Add a journal entry with a title and content",
	}, AddJournalHandler(deps.Journal))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_journal",
		Description: "List journal entries, most recent first",
	}, ListJournalHandler(deps.Journal))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_journal_entry",
		Description: "Read one journal entry in full by ID",
	}, GetJournalHandler(deps.Journal))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_journal",
		Description: "Write journal entries to a plain text file",
	}, ExportJournalHandler(deps.Journal, deps.ExportDir))

	// Wellness
	mcp.AddTool(server, &mcp.Tool{
		Name:        "crisis_resources",
		Description: "Crisis hotlines and mental health resources",
	}, CrisisResourcesHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily_affirmation",
		Description: "The affirmation of the day",
	}, DailyAffirmationHandler())

	if deps.Analyzer != nil {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "analyze_image",
			Description: "Analyze a local image for signs of emotional distress",
		}, AnalyzeImageHandler(deps.Analyzer))
	}

	return server
}
