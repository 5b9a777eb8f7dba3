// go_scout — creator discovery & outreach MCP server.
//
// Exposes the creator-analysis pipeline as MCP tools: creator_search,
// ad_history, outreach_send, send_log, quota_status, quota_reset_ai.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/glowuprizz/go_scout/internal/engine"
	"github.com/glowuprizz/go_scout/internal/scoutserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.Any("error", err))
	}

	initEngine()

	slog.Info("starting go_scout",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_scout",
		Version: version,
	}, nil)

	scoutserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 6))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_scout",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		YouTubeAPIKey:         env.Str("YOUTUBE_API_KEY", ""),
		YouTubeAPIKeyFallback: env.Str("YOUTUBE_API_KEY_FALLBACK", ""),
		LLMAPIKey:             env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:    env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:            env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:              env.Str("LLM_MODEL", "gemini-2.0-flash"),
		LLMTemperature:        env.Float("LLM_TEMPERATURE", 0.1),
		LLMMaxTokens:          env.Int("LLM_MAX_TOKENS", 2048),
		LLMRateInterval:       env.Duration("LLM_RATE_INTERVAL", time.Second),
		MinDurationSeconds:    env.Int("SCOUT_MIN_DURATION_SECONDS", 60),
		RecentUploads:         env.Int("SCOUT_RECENT_UPLOADS", 15),
		AdHistoryCount:        env.Int("SCOUT_AD_HISTORY_COUNT", 20),
		SMTPHost:              env.Str("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:              env.Int("SMTP_PORT", 465),
		SMTPUser:              env.Str("EMAIL_USER", ""),
		SMTPPassword:          env.Str("EMAIL_PW", ""),
		ReplyTo:               env.Str("REPLY_TO", ""),
		AdminToken:            env.Str("SCOUT_ADMIN_TOKEN", ""),
		CacheMaxEntries:       env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval:  env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)

	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
