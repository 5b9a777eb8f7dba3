package scout

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/glowuprizz/go_scout/internal/engine"
)

// disclosurePhrases are the strings whose presence in a title or description
// marks a video as officially sponsored. Korean first (the platform inserts
// the localized disclosure), then the common English markers.
var disclosurePhrases = []string{
	"유료 광고", "협찬", "광고", "제작 지원", "제품 제공",
	"#ad", "#AD", "paid promotion", "Paid", "sponsored",
}

const (
	defaultAdHistoryCount = 20
	adWindowDays          = 365
	descMatchLen          = 500 // description prefix checked in pass 1
	descPromptLen         = 300 // description excerpt sent to the model
)

// matchDisclosure returns the first disclosure phrase found in the video's
// title or description prefix, or "".
func matchDisclosure(v engine.Video) string {
	desc := engine.TruncateRunes(v.Description, descMatchLen)
	for _, p := range disclosurePhrases {
		if strings.Contains(v.Title, p) || strings.Contains(desc, p) {
			return p
		}
	}
	return ""
}

// DetectSponsored classifies a channel's recent uploads and returns the
// likely-sponsored ones, restricted to the trailing 365 days, oldest-fetched
// order preserved. Pass 1 is exact phrase matching; pass 2 sends the
// remainder to the model in one batched prompt and is allowed to be
// imprecise. Any fetch or prompt failure yields an empty result, not an
// error — the caller renders "no history found" either way.
func DetectSponsored(ctx context.Context, api VideoAPI, model TextModel, uploadsID string, recentCount int) []engine.SponsoredVideo {
	if recentCount <= 0 {
		recentCount = defaultAdHistoryCount
	}

	videos, err := api.RecentUploads(ctx, uploadsID, recentCount)
	if err != nil {
		slog.Warn("sponsor: uploads fetch failed", slog.Any("error", err))
		return nil
	}

	cutoff := time.Now().AddDate(0, 0, -adWindowDays)
	var recent []engine.Video
	for _, v := range videos {
		if v.PublishedAt.Before(cutoff) {
			continue
		}
		recent = append(recent, v)
	}
	if len(recent) == 0 {
		return nil
	}

	// Pass 1: deterministic and free.
	provenance := make(map[int]string, len(recent))
	for i, v := range recent {
		if p := matchDisclosure(v); p != "" {
			provenance[i] = p
		}
	}

	// Pass 2: batch the unmatched remainder into one prompt.
	var remainder []int
	for i := range recent {
		if _, ok := provenance[i]; !ok {
			remainder = append(remainder, i)
		}
	}
	if len(remainder) > 0 && model != nil {
		var sb strings.Builder
		for _, i := range remainder {
			fmt.Fprintf(&sb, "[%d] title: %s / description: %s\n",
				i, recent[i].Title, engine.TruncateRunes(recent[i].Description, descPromptLen))
		}
		raw, err := model.Complete(ctx, fmt.Sprintf(suspectAdsPrompt, sb.String()))
		if err != nil {
			slog.Debug("sponsor: model pass failed, keeping phrase matches only", slog.Any("error", err))
		} else if !engine.IsNoneToken(raw) {
			for _, idx := range engine.ExtractInts(raw) {
				if idx < 0 || idx >= len(recent) {
					continue
				}
				if _, ok := provenance[idx]; !ok {
					provenance[idx] = "AI"
				}
			}
		}
	}

	indices := make([]int, 0, len(provenance))
	for i := range provenance {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	out := make([]engine.SponsoredVideo, 0, len(indices))
	for _, i := range indices {
		label := engine.LabelSponsored
		if provenance[i] == "AI" {
			label = engine.LabelAISuspected
		}
		out = append(out, engine.SponsoredVideo{
			Video:      recent[i],
			Label:      label,
			Provenance: provenance[i],
		})
	}
	return out
}
