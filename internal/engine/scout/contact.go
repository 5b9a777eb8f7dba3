package scout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/glowuprizz/go_scout/internal/engine"
)

const (
	minDescLen  = 5  // below this, don't bother
	maxEmailLen = 50 // model replies longer than this are chatter, not addresses
)

// ExtractEmail pulls a contact address out of free text. Regex runs first
// and costs nothing; the model is asked only on a regex miss. Every failure
// path degrades to not-found — the caller never sees an error.
func ExtractEmail(ctx context.Context, model TextModel, text string) (string, bool) {
	text = strings.TrimSpace(text)
	if len(text) < minDescLen {
		return "", false
	}

	if email := engine.FindEmail(text); email != "" {
		return email, true
	}

	if model == nil {
		return "", false
	}
	raw, err := model.Complete(ctx, fmt.Sprintf(extractEmailPrompt, text))
	if err != nil {
		slog.Debug("contact: model extraction failed", slog.Any("error", err))
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if engine.IsNoneToken(raw) || !strings.Contains(raw, "@") || len(raw) >= maxEmailLen {
		return "", false
	}
	return raw, true
}
