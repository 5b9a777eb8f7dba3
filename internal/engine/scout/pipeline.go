package scout

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/glowuprizz/go_scout/internal/engine"
)

// NotFoundEmail is the sentinel rendered when extraction came up empty and
// the entry needs a manual look.
const NotFoundEmail = "none"

// PipelineOpts configures one search submission.
type PipelineOpts struct {
	Keywords   []string
	Region     string // ISO 3166-1 alpha-2, "" = no region scope
	Mode       string // sources.ModeVideo (default) or sources.ModeChannel
	SampleSize int    // search results analyzed per keyword
	Exclude    map[string]struct{}
	Score      ScoreConfig
}

// PipelineResult is the ranked candidate list plus the halt reason, if any.
type PipelineResult struct {
	Candidates     []engine.Candidate `json:"candidates"`
	Scanned        int                `json:"scanned"`
	QuotaExhausted bool               `json:"quota_exhausted"`
}

// RunPipeline executes discovery → exclude filter → score → contact
// extraction for every keyword. Failures local to one channel are logged
// and skipped; an upstream quota-exhaustion signal stops the whole batch
// so no further cost accrues. Accepted candidates are ranked by efficiency.
func RunPipeline(ctx context.Context, api ChannelAPI, model TextModel, opts PipelineOpts) (*PipelineResult, error) {
	result := &PipelineResult{}
	processed := make(map[string]bool)

	for _, keyword := range opts.Keywords {
		refs, err := api.Search(ctx, keyword, opts.Region, opts.Mode, opts.SampleSize)
		if err != nil {
			if errors.Is(err, engine.ErrQuotaExhausted) {
				result.QuotaExhausted = true
				break
			}
			slog.Warn("pipeline: search failed, skipping keyword",
				slog.String("keyword", keyword), slog.Any("error", err))
			continue
		}

		halted := false
		for _, ref := range refs {
			if processed[ref.ID] {
				continue
			}
			processed[ref.ID] = true
			result.Scanned++

			ch, err := api.ChannelDetail(ctx, ref.ID)
			if err != nil {
				if errors.Is(err, engine.ErrQuotaExhausted) {
					result.QuotaExhausted = true
					halted = true
					break
				}
				slog.Warn("pipeline: channel detail failed, skipping",
					slog.String("channel", ref.ID), slog.Any("error", err))
				continue
			}
			if ch == nil {
				continue
			}
			if _, ok := opts.Exclude[ch.Title]; ok {
				continue
			}
			if _, ok := opts.Exclude[ch.URL]; ok {
				continue
			}

			score, err := ScoreChannel(ctx, api, *ch, opts.Score)
			if err != nil {
				if errors.Is(err, engine.ErrQuotaExhausted) {
					result.QuotaExhausted = true
					halted = true
					break
				}
				slog.Warn("pipeline: scoring failed, skipping",
					slog.String("channel", ch.ID), slog.Any("error", err))
				continue
			}
			if score == nil {
				continue
			}

			email, found := ExtractEmail(ctx, model, ch.Description)
			if !found {
				email = NotFoundEmail
			}
			result.Candidates = append(result.Candidates, engine.Candidate{
				Channel:    *ch,
				AvgViews:   score.AvgViews,
				Efficiency: score.Efficiency,
				Email:      email,
			})
		}
		if halted {
			break
		}
	}

	sort.SliceStable(result.Candidates, func(i, j int) bool {
		return result.Candidates[i].Efficiency > result.Candidates[j].Efficiency
	})
	return result, nil
}
