package scoutserver

import (
	"context"
	"errors"
	"strconv"

	"github.com/glowuprizz/go_scout/internal/engine"
	"github.com/glowuprizz/go_scout/internal/engine/scout"
	"github.com/glowuprizz/go_scout/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AdHistoryInput is the input for ad_history.
type AdHistoryInput struct {
	UploadsID   string `json:"uploads_id" jsonschema:"The channel's uploads playlist ID, as returned by creator_search"`
	RecentCount int    `json:"recent_count,omitempty" jsonschema:"Recent uploads to analyze, 1-50 (default 20)"`
}

// AdHistoryOutput lists likely-sponsored uploads from the trailing year.
type AdHistoryOutput struct {
	Videos []engine.SponsoredVideo `json:"videos"`
	Total  int                     `json:"total"`
	Note   string                  `json:"note"`
}

func registerAdHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ad_history",
		Description: "Detect likely sponsored content in a channel's recent uploads (trailing 365 days). Pass 1 matches disclosure phrases in titles/descriptions; pass 2 asks the language model about the remainder. Empty result means no sponsorship history was found.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input AdHistoryInput) (*mcp.CallToolResult, AdHistoryOutput, error) {
		if input.UploadsID == "" {
			return nil, AdHistoryOutput{}, errors.New("uploads_id is required")
		}

		count := input.RecentCount
		if count <= 0 {
			count = engine.Cfg.AdHistoryCount
		}

		cacheKey := engine.CacheKey("ad_history", input.UploadsID, strconv.Itoa(count))
		if out, ok := engine.CacheLoadJSON[AdHistoryOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		videos := scout.DetectSponsored(ctx, sources.NewClient(), engine.LLM{}, input.UploadsID, count)
		out := AdHistoryOutput{
			Videos: videos,
			Total:  len(videos),
			Note:   "ai-suspected entries are a best-effort heuristic for undisclosed sponsorships and are not guaranteed",
		}
		engine.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
