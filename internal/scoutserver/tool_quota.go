package scoutserver

import (
	"context"
	"errors"
	"time"

	"github.com/glowuprizz/go_scout/internal/engine"
	"github.com/glowuprizz/go_scout/internal/engine/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// QuotaStatusInput is the input for quota_status.
type QuotaStatusInput struct{}

// QuotaStatusOutput reports the shared API spend.
type QuotaStatusOutput struct {
	SearchUnits int64  `json:"search_units_today"`
	DailyBudget int64  `json:"daily_search_budget"`
	AICalls     int64  `json:"ai_calls_total"`
	NextReset   string `json:"next_reset"`
}

func registerQuotaStatus(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "quota_status",
		Description: "Show the team's shared API spend: search-cost units since the last daily reset (17:00 KST) and the cumulative AI call count.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ QuotaStatusInput) (*mcp.CallToolResult, QuotaStatusOutput, error) {
		search, ai, err := store.Record(ctx, 0, 0)
		if err != nil {
			return nil, QuotaStatusOutput{}, err
		}
		next := store.ResetBoundary(time.Now()).AddDate(0, 0, 1)
		return nil, QuotaStatusOutput{
			SearchUnits: search,
			DailyBudget: store.DailySearchBudget,
			AICalls:     ai,
			NextReset:   next.Format(time.RFC3339),
		}, nil
	})
}

// QuotaResetAIInput is the input for quota_reset_ai.
type QuotaResetAIInput struct {
	Token string `json:"token" jsonschema:"Admin token (SCOUT_ADMIN_TOKEN)"`
}

// QuotaResetAIOutput confirms the reset.
type QuotaResetAIOutput struct {
	Message string `json:"message"`
}

func registerQuotaResetAI(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "quota_reset_ai",
		Description: "Zero the cumulative AI-call counter. Admin only; typically run at the start of each billing month.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input QuotaResetAIInput) (*mcp.CallToolResult, QuotaResetAIOutput, error) {
		if engine.Cfg.AdminToken == "" || input.Token != engine.Cfg.AdminToken {
			return nil, QuotaResetAIOutput{}, errors.New("invalid admin token")
		}
		if err := store.ResetAI(ctx); err != nil {
			return nil, QuotaResetAIOutput{}, err
		}
		return nil, QuotaResetAIOutput{Message: "ai call counter reset"}, nil
	})
}
