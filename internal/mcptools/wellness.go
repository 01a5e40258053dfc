package mcptools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sef-community/sefctl/internal/wellness"
)

// CrisisResourcesHandler returns the handler function for the crisis_resources MCP tool.
func CrisisResourcesHandler() func(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, CrisisResourcesOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, CrisisResourcesOutput, error) {
		return nil, CrisisResourcesOutput{
			CrisisLines: wellness.CrisisLines(),
			Resources:   wellness.Resources(),
		}, nil
	}
}

// DailyAffirmationHandler returns the handler function for the daily_affirmation MCP tool.
func DailyAffirmationHandler() func(ctx context.Context, req *mcp.CallToolRequest, input AffirmationInput) (*mcp.CallToolResult, AffirmationOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AffirmationInput) (*mcp.CallToolResult, AffirmationOutput, error) {
		day, err := parseDateOr(input.Date, time.Now())
		if err != nil {
			return nil, AffirmationOutput{}, fmt.Errorf("invalid date %q: %w", input.Date, err)
		}
		return nil, AffirmationOutput{
			Date:        day.Format("2006-01-02"),
			Affirmation: wellness.DailyAffirmation(day),
		}, nil
	}
}
