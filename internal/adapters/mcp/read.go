package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"notetree/internal/application/commands"
	"notetree/internal/domain"
)

// TreeService is the subset of the notetree service used by the tools
type TreeService interface {
	BuildRoot(ctx context.Context, depth int) (*domain.DisplayNode, error)
	Expand(ctx context.Context, noteID string) ([]*domain.DisplayNode, error)
	Inspect(ctx context.Context, noteID string) (*commands.InspectResult, error)
	SetHoist(ctx context.Context, noteID string, clear bool) (*commands.HoistResult, error)
}

// RegisterReadTools adds all read-only tree tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, svc TreeService) {
	s.AddTool(treeTool(), treeHandler(svc))
	s.AddTool(expandTool(), expandHandler(svc))
	s.AddTool(inspectTool(), inspectHandler(svc))
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the note tree from the effective root (the hoisted note, or root). Collapsed folders are marked ▸ and can be opened with expand."),
		mcp.WithNumber("depth",
			mcp.Description("Expand collapsed folders down to this many levels. Omit to keep the stored expansion state."),
		),
		mcp.WithBoolean("json",
			mcp.Description("Return the display nodes as JSON instead of an outline"),
		),
	)
}

func treeHandler(svc TreeService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, err := svc.BuildRoot(ctx, req.GetInt("depth", 0))
		if err != nil {
			return toolError(err)
		}

		if req.GetBool("json", false) {
			return jsonResult(root)
		}

		var sb strings.Builder
		if err := commands.WriteOutline(&sb, root); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- expand ---

func expandTool() mcp.Tool {
	return mcp.NewTool("expand",
		mcp.WithDescription("List the display nodes directly under a note, the way a lazy folder loads them. Search notes are refreshed first."),
		mcp.WithString("note_id",
			mcp.Description("Note ID to expand"),
			mcp.Required(),
		),
		mcp.WithBoolean("json",
			mcp.Description("Return the display nodes as JSON instead of an outline"),
		),
	)
}

func expandHandler(svc TreeService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		noteID := req.GetString("note_id", "")
		if noteID == "" {
			return toolError(fmt.Errorf("note_id is required"))
		}

		children, err := svc.Expand(ctx, noteID)
		if err != nil {
			return toolError(err)
		}

		if req.GetBool("json", false) {
			return jsonResult(children)
		}
		if len(children) == 0 {
			return mcp.NewToolResultText("No children."), nil
		}

		var sb strings.Builder
		if err := commands.WriteNodes(&sb, children); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- inspect ---

func inspectTool() mcp.Tool {
	return mcp.NewTool("inspect",
		mcp.WithDescription("Show how a note is presented in the tree: icon, extra classes, parents, visible and hidden children."),
		mcp.WithString("note_id",
			mcp.Description("Note ID to inspect"),
			mcp.Required(),
		),
	)
}

func inspectHandler(svc TreeService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		noteID := req.GetString("note_id", "")
		if noteID == "" {
			return toolError(fmt.Errorf("note_id is required"))
		}

		info, err := svc.Inspect(ctx, noteID)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(info)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(fmt.Errorf("encoding result: %w", err))
	}
	return mcp.NewToolResultText(string(data)), nil
}
