package scout

import (
	"context"
	"fmt"

	"github.com/glowuprizz/go_scout/internal/engine"
)

// Default scoring knobs, used when the caller leaves them zero.
const (
	defaultSampleSize     = 15 // recent uploads fetched per channel
	defaultMinDurationSec = 60 // long-form threshold
	scoreCap              = 10 // qualifying videos averaged
)

// ScoreConfig carries the caller-supplied thresholds for one submission.
type ScoreConfig struct {
	MinSubscribers int64
	MaxSubscribers int64
	MinEfficiency  float64 // average views / subscribers
	MinAvgViews    float64 // optional floor, 0 = disabled
	SampleSize     int
	MinDurationSec int
}

// Score is the scorer's accepted result.
type Score struct {
	AvgViews   float64 `json:"avg_views"`
	Efficiency float64 `json:"efficiency"`
}

// EfficiencyRatio is average views over subscribers, defined as 0 for a
// channel with no subscribers.
func EfficiencyRatio(avgViews float64, subscribers int64) float64 {
	if subscribers <= 0 {
		return 0
	}
	return avgViews / float64(subscribers)
}

// ScoreChannel rates a channel's recent long-form output against sc.
// A nil Score with nil error means rejected. The subscriber-range check
// runs before any fetch, so out-of-range channels cost nothing.
func ScoreChannel(ctx context.Context, api VideoAPI, ch engine.Channel, sc ScoreConfig) (*Score, error) {
	if ch.Subscribers < sc.MinSubscribers || (sc.MaxSubscribers > 0 && ch.Subscribers > sc.MaxSubscribers) {
		return nil, nil
	}

	sample := sc.SampleSize
	if sample <= 0 {
		sample = defaultSampleSize
	}
	minDur := sc.MinDurationSec
	if minDur <= 0 {
		minDur = defaultMinDurationSec
	}

	videos, err := api.RecentUploads(ctx, ch.UploadsID, sample)
	if err != nil {
		return nil, fmt.Errorf("score %s: %w", ch.ID, err)
	}

	var longform []engine.Video
	for _, v := range videos {
		if v.DurationSec >= minDur {
			longform = append(longform, v)
		}
	}
	if len(longform) == 0 {
		return nil, nil
	}
	if len(longform) > scoreCap {
		longform = longform[:scoreCap]
	}

	var total int64
	for _, v := range longform {
		total += v.Views
	}
	avg := float64(total) / float64(len(longform))
	eff := EfficiencyRatio(avg, ch.Subscribers)

	// Zero subscribers is never a qualifying channel, whatever the target.
	if ch.Subscribers == 0 {
		return nil, nil
	}
	if eff < sc.MinEfficiency {
		return nil, nil
	}
	if sc.MinAvgViews > 0 && avg < sc.MinAvgViews {
		return nil, nil
	}
	return &Score{AvgViews: avg, Efficiency: eff}, nil
}
