package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
	"golang.org/x/time/rate"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	YouTubeAPIKey         string
	YouTubeAPIKeyFallback string

	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int
	LLMRateInterval    time.Duration // minimum spacing between model calls

	MinDurationSeconds int // long-form threshold for scoring
	RecentUploads      int // uploads fetched per channel for scoring
	AdHistoryCount     int // uploads fetched for sponsorship analysis

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	ReplyTo      string

	AdminToken string // required for quota_reset_ai

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	HTTPClient *http.Client
	LLMClient  *llm.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sources, scout).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg

	interval := c.LLMRateInterval
	if interval <= 0 {
		interval = time.Second
	}
	llmLimiter = rate.NewLimiter(rate.Every(interval), 1)
}
