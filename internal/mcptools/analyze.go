package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AnalyzeImageHandler returns the handler function for the analyze_image MCP tool.
// Request failures come back as "Error: ..." text, not as tool errors.
func AnalyzeImageHandler(a ImageAnalyzer) func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeImageInput) (*mcp.CallToolResult, AnalyzeImageOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeImageInput) (*mcp.CallToolResult, AnalyzeImageOutput, error) {
		if input.Path == "" {
			return nil, AnalyzeImageOutput{}, errPathRequired
		}
		return nil, AnalyzeImageOutput{Analysis: a.Analyze(ctx, input.Path)}, nil
	}
}
