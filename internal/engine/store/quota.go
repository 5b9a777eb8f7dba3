package store

import (
	"context"
	"fmt"
	"time"
)

// API unit costs, per the platform's billing table.
const (
	CostSearch = 100 // search.list
	CostList   = 1   // channels.list / playlistItems.list / videos.list
)

// DailySearchBudget is the team's daily allowance of search-cost units,
// shown next to the current total so operators can pace themselves.
const DailySearchBudget = 500000

const timeLayout = "2006-01-02 15:04:05"

// The reset boundary is fixed at 17:00 KST, when the platform's own daily
// quota rolls over for this account.
var kst = time.FixedZone("KST", 9*60*60)

const resetHour = 17

// ResetBoundary returns the most recent occurrence of the daily reset
// instant at or before now.
func ResetBoundary(now time.Time) time.Time {
	n := now.In(kst)
	b := time.Date(n.Year(), n.Month(), n.Day(), resetHour, 0, 0, 0, kst)
	if n.Before(b) {
		b = b.AddDate(0, 0, -1)
	}
	return b
}

// Record posts cost increments to the ledger and returns the new totals.
// Record(ctx, 0, 0) is a pure read, except that a ledger last reset before
// the current boundary is rolled over first — so even reads keep the
// search counter honest. The AI counter never auto-resets.
func Record(ctx context.Context, searchUnits, aiCalls int64) (searchTotal, aiTotal int64, err error) {
	db, err := openScoutDB()
	if err != nil {
		return 0, 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("quota: begin: %w", err)
	}
	defer tx.Rollback()

	var lastReset string
	if err := tx.QueryRowContext(ctx,
		`SELECT search_units, ai_calls, last_reset FROM api_usage WHERE id = 1`,
	).Scan(&searchTotal, &aiTotal, &lastReset); err != nil {
		return 0, 0, fmt.Errorf("quota: read: %w", err)
	}

	now := nowFunc()
	boundary := ResetBoundary(now)
	// An unparsable timestamp (half-written row from a crashed instance)
	// counts as stale: rolling over loses nothing but a partial day.
	reset, perr := time.ParseInLocation(timeLayout, lastReset, kst)
	if perr != nil || reset.Before(boundary) {
		searchTotal = 0
		if _, err := tx.ExecContext(ctx,
			`UPDATE api_usage SET search_units = 0, last_reset = ? WHERE id = 1`,
			now.In(kst).Format(timeLayout),
		); err != nil {
			return 0, 0, fmt.Errorf("quota: rollover: %w", err)
		}
	}

	if searchUnits > 0 || aiCalls > 0 {
		if _, err := tx.ExecContext(ctx,
			`UPDATE api_usage SET search_units = search_units + ?, ai_calls = ai_calls + ? WHERE id = 1`,
			searchUnits, aiCalls,
		); err != nil {
			return 0, 0, fmt.Errorf("quota: increment: %w", err)
		}
		searchTotal += searchUnits
		aiTotal += aiCalls
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("quota: commit: %w", err)
	}
	return searchTotal, aiTotal, nil
}

// ResetAI zeroes the AI-call counter. Admin action only; the search counter
// is left to its daily rollover.
func ResetAI(ctx context.Context) error {
	db, err := openScoutDB()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, `UPDATE api_usage SET ai_calls = 0 WHERE id = 1`); err != nil {
		return fmt.Errorf("quota: reset ai: %w", err)
	}
	return nil
}
