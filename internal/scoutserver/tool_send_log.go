package scoutserver

import (
	"context"

	"github.com/glowuprizz/go_scout/internal/engine/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SendLogInput is the input for send_log.
type SendLogInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max entries to return, newest first (default 50)"`
}

// SendLogOutput lists recent mail-send attempts.
type SendLogOutput struct {
	Entries []store.SendEntry `json:"entries"`
	Total   int               `json:"total"`
}

func registerSendLog(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "send_log",
		Description: "List recent outreach mail-send attempts (channel, recipient, status, timestamp), newest first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input SendLogInput) (*mcp.CallToolResult, SendLogOutput, error) {
		entries, err := store.ListSends(ctx, input.Limit)
		if err != nil {
			return nil, SendLogOutput{}, err
		}
		return nil, SendLogOutput{Entries: entries, Total: len(entries)}, nil
	})
}
