package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/glowuprizz/go_scout/internal/engine/store"
	"golang.org/x/time/rate"
)

// llmLimiter spaces out model calls. The pipeline is synchronous, so a
// simple one-token limiter is enough of a self-imposed rate cap.
var llmLimiter = rate.NewLimiter(rate.Every(time.Second), 1)

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt using the configured temperature and max_tokens.
// Every call is posted to the quota ledger's AI counter.
func CallLLM(ctx context.Context, prompt string) (string, error) {
	if cfg.LLMClient == nil {
		return "", errors.New("llm: client not configured")
	}
	if err := llmLimiter.Wait(ctx); err != nil {
		return "", err
	}

	metrics.LLMCalls.Add(1)
	if _, _, err := store.Record(ctx, 0, 1); err != nil {
		// Ledger trouble must not block the call itself.
		slog.Warn("llm: quota ledger update failed", slog.Any("error", err))
	}

	resp, err := cfg.LLMClient.Complete(ctx, "", prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(resp), nil
}

// LLM adapts CallLLM to the scout.TextModel interface.
type LLM struct{}

func (LLM) Complete(ctx context.Context, prompt string) (string, error) {
	return CallLLM(ctx, prompt)
}
