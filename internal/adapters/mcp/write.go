package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterWriteTools adds the tools that change tree state to the MCP server.
func RegisterWriteTools(s *server.MCPServer, svc TreeService) {
	s.AddTool(hoistTool(), hoistHandler(svc))
}

// --- hoist ---

func hoistTool() mcp.Tool {
	return mcp.NewTool("hoist",
		mcp.WithDescription("Make a note the effective root of the tree, or return to the root with clear."),
		mcp.WithString("note_id",
			mcp.Description("Note ID to hoist. Omit when clearing."),
		),
		mcp.WithBoolean("clear",
			mcp.Description("Return to the absolute root"),
		),
	)
}

func hoistHandler(svc TreeService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := svc.SetHoist(ctx, req.GetString("note_id", ""), req.GetBool("clear", false))
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
