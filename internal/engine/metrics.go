package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests atomic.Int64
	DetailRequests atomic.Int64
	LLMCalls       atomic.Int64
	LLMErrors      atomic.Int64
	MailSends      atomic.Int64
	MailErrors     atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"search_requests": metrics.SearchRequests.Load(),
		"detail_requests": metrics.DetailRequests.Load(),
		"llm_calls":       metrics.LLMCalls.Load(),
		"llm_errors":      metrics.LLMErrors.Load(),
		"mail_sends":      metrics.MailSends.Load(),
		"mail_errors":     metrics.MailErrors.Load(),
		"cache_hits":      hits,
		"cache_misses":    misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"search_requests", "detail_requests",
		"llm_calls", "llm_errors",
		"mail_sends", "mail_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the sources and scout sub-packages.
func IncrSearchRequests() { metrics.SearchRequests.Add(1) }
func IncrDetailRequests() { metrics.DetailRequests.Add(1) }
func IncrMailSends()      { metrics.MailSends.Add(1) }
func IncrMailErrors()     { metrics.MailErrors.Add(1) }
