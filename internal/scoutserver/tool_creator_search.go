package scoutserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glowuprizz/go_scout/internal/engine"
	"github.com/glowuprizz/go_scout/internal/engine/scout"
	"github.com/glowuprizz/go_scout/internal/engine/sources"
	"github.com/glowuprizz/go_scout/internal/engine/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CreatorSearchInput is the input for creator_search.
type CreatorSearchInput struct {
	Keywords       string  `json:"keywords" jsonschema:"Comma-separated search keywords (e.g. camping gear, 캠핑)"`
	Region         string  `json:"region,omitempty" jsonschema:"ISO 3166-1 alpha-2 region code: KR, US, JP, GB, VN, TH, ID, TW"`
	Mode           string  `json:"mode,omitempty" jsonschema:"Search mode: video (finds channels whose content matches the keyword, recommended) or channel (matches channel names only)"`
	MinSubscribers int64   `json:"min_subscribers,omitempty" jsonschema:"Lower bound of the subscriber range"`
	MaxSubscribers int64   `json:"max_subscribers,omitempty" jsonschema:"Upper bound of the subscriber range (0 = unbounded)"`
	MinEfficiency  float64 `json:"min_efficiency,omitempty" jsonschema:"Minimum efficiency: average long-form views divided by subscribers (e.g. 0.3)"`
	MinAvgViews    float64 `json:"min_avg_views,omitempty" jsonschema:"Optional floor on average long-form views"`
	SampleSize     int     `json:"sample_size,omitempty" jsonschema:"Search results analyzed per keyword, 5-50 (default 20)"`
	ExcludeFile    string  `json:"exclude_file,omitempty" jsonschema:"Path to a CSV or XLSX exclude list; channel names or URLs in the first column, header row skipped"`
}

// CreatorSearchOutput is the ranked candidate list for one submission.
type CreatorSearchOutput struct {
	Candidates     []engine.Candidate `json:"candidates"`
	Scanned        int                `json:"scanned"`
	QuotaExhausted bool               `json:"quota_exhausted,omitempty"`
	SearchUnits    int64              `json:"search_units_today"`
	AICalls        int64              `json:"ai_calls_total"`
}

func registerCreatorSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "creator_search",
		Description: "Search the video platform for creator channels matching keyword/region/subscriber criteria, score them by view-to-subscriber efficiency over recent long-form uploads, and extract a contact email per accepted channel. Returns a ranked candidate list. Halts early when the platform's daily API quota is exhausted.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CreatorSearchInput) (*mcp.CallToolResult, CreatorSearchOutput, error) {
		if strings.TrimSpace(input.Keywords) == "" {
			return nil, CreatorSearchOutput{}, errors.New("keywords is required")
		}

		var keywords []string
		for _, k := range strings.Split(input.Keywords, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keywords = append(keywords, k)
			}
		}

		cacheKey := engine.CacheKey("creator_search", input.Keywords, input.Region, input.Mode,
			fmt.Sprintf("%d_%d_%g_%g_%d", input.MinSubscribers, input.MaxSubscribers,
				input.MinEfficiency, input.MinAvgViews, input.SampleSize),
			input.ExcludeFile)
		if out, ok := engine.CacheLoadJSON[CreatorSearchOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		res, err := scout.RunPipeline(ctx, sources.NewClient(), engine.LLM{}, scout.PipelineOpts{
			Keywords:   keywords,
			Region:     input.Region,
			Mode:       input.Mode,
			SampleSize: input.SampleSize,
			Exclude:    scout.LoadExcludeList(input.ExcludeFile),
			Score: scout.ScoreConfig{
				MinSubscribers: input.MinSubscribers,
				MaxSubscribers: input.MaxSubscribers,
				MinEfficiency:  input.MinEfficiency,
				MinAvgViews:    input.MinAvgViews,
				MinDurationSec: engine.Cfg.MinDurationSeconds,
				SampleSize:     engine.Cfg.RecentUploads,
			},
		})
		if err != nil {
			return nil, CreatorSearchOutput{}, err
		}

		out := CreatorSearchOutput{
			Candidates:     res.Candidates,
			Scanned:        res.Scanned,
			QuotaExhausted: res.QuotaExhausted,
		}
		out.SearchUnits, out.AICalls, _ = store.Record(ctx, 0, 0)

		// A quota-truncated result is partial; caching it would hide
		// channels from tomorrow's identical search.
		if !res.QuotaExhausted {
			engine.CacheStoreJSON(ctx, cacheKey, out)
		}
		return nil, out, nil
	})
}
