package cmd

import (
	"context"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sef-community/sefctl/internal/journal"
	"github.com/sef-community/sefctl/internal/mcptools"
	"github.com/sef-community/sefctl/internal/mood"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes the mood tracker,
journal and wellness tools over stdio. Entries live for as long as the server
runs; use the export tools to keep them.

Available tools:
  - add_mood, list_moods, export_moods
  - add_journal_entry, list_journal, export_journal
  - crisis_resources, daily_affirmation
  - analyze_image (when analysis credentials are configured)

Example usage in an MCP client config:
  {
    "mcpServers": {
      "sefctl": {
        "command": "/path/to/sefctl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Log to stderr (stdout is reserved for MCP protocol)
	log.SetOutput(os.Stderr)

	deps := mcptools.Deps{
		Moods:     mood.NewStore(),
		Journal:   journal.NewStore(),
		ExportDir: appConfig.ExportDir,
	}
	if r, err := newRequester(); err != nil {
		log.Printf("analyze_image disabled: %v", err)
	} else {
		deps.Analyzer = r
	}

	server := mcptools.CreateMCPServer(deps)

	log.Printf("Starting sefctl MCP server (stdio transport)")
	log.Printf("Export directory: %s", appConfig.ExportDir)

	// This blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
