package inspector

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/inspector/kit"
)

// RegisterMCP registers inspector tools on an MCP server.
func (ins *Inspector) RegisterMCP(srv *mcp.Server) {
	ins.registerRunTool(srv)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

type runReq struct {
	URL string `json:"url"`
}

// Status values returned by run_inspector.
const (
	StatusFired       = "fired"
	StatusNoActiveTab = "no_active_tab"
)

func (ins *Inspector) registerRunTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "run_inspector",
		Description: "Run the design inspector on the active tab and render its overlay in the page. With url, open that page first.",
		InputSchema: inputSchema(map[string]any{
			"url": map[string]any{"type": "string", "description": "Page to open and inspect (optional)"},
		}, nil),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*runReq)
		if r.URL != "" {
			t, err := ins.OpenPage(ctx, "", r.URL)
			if err != nil {
				return nil, err
			}
			ins.SetActive(t.ID())
		}
		if _, ok := ins.ActiveTab(); !ok {
			return map[string]string{"status": StatusNoActiveTab}, nil
		}
		if err := ins.Fire(ctx, ins.Command()); err != nil {
			return nil, err
		}
		return map[string]string{"status": StatusFired}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, kit.DecodeJSON[runReq]())
}
