package engine

import (
	"errors"
	"time"
)

// ErrQuotaExhausted signals that the video platform's daily API quota is
// spent. Callers must stop issuing further calls instead of skipping.
var ErrQuotaExhausted = errors.New("video platform quota exhausted")

// ChannelRef is a raw discovery hit: a channel ID plus where it came from.
type ChannelRef struct {
	ID      string `json:"id"`
	Keyword string `json:"keyword,omitempty"`
}

// Channel is a resolved channel candidate.
type Channel struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	UploadsID    string `json:"uploads_id"`
	Subscribers  int64  `json:"subscribers"`
	URL          string `json:"url"`
}

// Video is one upload, as returned by the detail endpoints.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	DurationSec int       `json:"duration_sec"`
	Views       int64     `json:"views"`
	URL         string    `json:"url"`
}

// Candidate is a scored channel with its extracted contact.
type Candidate struct {
	Channel
	AvgViews   float64 `json:"avg_views"`
	Efficiency float64 `json:"efficiency"`
	Email      string  `json:"email"` // "none" when extraction found nothing
}

// Sponsorship labels.
const (
	LabelSponsored   = "sponsored"    // disclosure phrase in title/description
	LabelAISuspected = "ai-suspected" // flagged by the model pass, best-effort
)

// SponsoredVideo is a video the detector flagged, with provenance:
// the matched disclosure phrase, or "AI" for the model pass.
type SponsoredVideo struct {
	Video
	Label      string `json:"label"`
	Provenance string `json:"provenance"`
}
