// Package scout implements the creator-analysis pipeline: discovery,
// performance scoring, contact extraction, and sponsorship detection.
package scout

import (
	"context"

	"github.com/glowuprizz/go_scout/internal/engine"
)

// VideoAPI is the slice of the platform API the scorer and detector need.
// Implemented by sources.Client; tests substitute fakes.
type VideoAPI interface {
	RecentUploads(ctx context.Context, playlistID string, limit int) ([]engine.Video, error)
}

// ChannelAPI adds the discovery calls the full pipeline needs.
type ChannelAPI interface {
	VideoAPI
	Search(ctx context.Context, keyword, region, mode string, limit int) ([]engine.ChannelRef, error)
	ChannelDetail(ctx context.Context, id string) (*engine.Channel, error)
}

// TextModel is a single-turn prompt → response language model.
// Implemented by engine.LLM; tests substitute fakes and count calls.
type TextModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
