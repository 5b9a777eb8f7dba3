package store

import (
	"context"
	"sync"
	"testing"
	"time"
)

// resetStore resets the singleton so each test gets a fresh DB pinned to a
// known clock.
func resetStore(t *testing.T, now time.Time) {
	t.Helper()
	t.Setenv("SCOUT_DATA_DIR", t.TempDir())
	scoutDB = nil
	scoutErr = nil
	scoutOnce = sync.Once{}
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = time.Now })
}

func TestResetBoundary(t *testing.T) {
	tests := []struct {
		name string
		now  string // KST
		want string // KST
	}{
		{"before 5pm", "2025-03-10 09:00:00", "2025-03-09 17:00:00"},
		{"exactly 5pm", "2025-03-10 17:00:00", "2025-03-10 17:00:00"},
		{"after 5pm", "2025-03-10 22:30:00", "2025-03-10 17:00:00"},
		{"just before 5pm", "2025-03-10 16:59:59", "2025-03-09 17:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, err := time.ParseInLocation(timeLayout, tt.now, kst)
			if err != nil {
				t.Fatal(err)
			}
			got := ResetBoundary(now)
			if got.Format(timeLayout) != tt.want {
				t.Errorf("ResetBoundary(%s) = %s, want %s", tt.now, got.Format(timeLayout), tt.want)
			}
		})
	}
}

func TestRecord_Accumulates(t *testing.T) {
	now, _ := time.ParseInLocation(timeLayout, "2025-03-10 18:00:00", kst)
	resetStore(t, now)
	ctx := context.Background()

	if _, _, err := Record(ctx, CostSearch, 0); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	search, ai, err := Record(ctx, CostList, 1)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if search != CostSearch+CostList {
		t.Errorf("search total = %d, want %d", search, CostSearch+CostList)
	}
	if ai != 1 {
		t.Errorf("ai total = %d, want 1", ai)
	}
}

func TestRecord_RolloverAcrossBoundary(t *testing.T) {
	day1, _ := time.ParseInLocation(timeLayout, "2025-03-10 12:00:00", kst)
	resetStore(t, day1)
	ctx := context.Background()

	if _, _, err := Record(ctx, 250, 2); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	// Cross the 17:00 boundary: search units reset, AI calls survive.
	day1evening, _ := time.ParseInLocation(timeLayout, "2025-03-10 17:00:01", kst)
	nowFunc = func() time.Time { return day1evening }

	search, ai, err := Record(ctx, 100, 0)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if search != 100 {
		t.Errorf("search total after rollover = %d, want 100 (only post-boundary increments)", search)
	}
	if ai != 2 {
		t.Errorf("ai total after rollover = %d, want 2 (never auto-reset)", ai)
	}
}

func TestRecord_PureReadRollsOverStaleLedger(t *testing.T) {
	day1, _ := time.ParseInLocation(timeLayout, "2025-03-10 12:00:00", kst)
	resetStore(t, day1)
	ctx := context.Background()

	if _, _, err := Record(ctx, 321, 0); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	nextWeek, _ := time.ParseInLocation(timeLayout, "2025-03-17 12:00:00", kst)
	nowFunc = func() time.Time { return nextWeek }

	search, _, err := Record(ctx, 0, 0)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if search != 0 {
		t.Errorf("pure read on stale ledger = %d, want 0", search)
	}
}

func TestRecord_CorruptResetTimestamp(t *testing.T) {
	now, _ := time.ParseInLocation(timeLayout, "2025-03-10 18:00:00", kst)
	resetStore(t, now)
	ctx := context.Background()

	if _, _, err := Record(ctx, 10, 0); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	db, err := openScoutDB()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`UPDATE api_usage SET last_reset = 'garbage' WHERE id = 1`); err != nil {
		t.Fatal(err)
	}

	// Unparsable timestamp is treated as stale, not a crash.
	search, _, err := Record(ctx, 5, 0)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if search != 5 {
		t.Errorf("search total after corrupt reset = %d, want 5", search)
	}
}

func TestResetAI(t *testing.T) {
	now, _ := time.ParseInLocation(timeLayout, "2025-03-10 18:00:00", kst)
	resetStore(t, now)
	ctx := context.Background()

	if _, _, err := Record(ctx, 0, 7); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if err := ResetAI(ctx); err != nil {
		t.Fatalf("ResetAI error: %v", err)
	}
	_, ai, err := Record(ctx, 0, 0)
	if err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if ai != 0 {
		t.Errorf("ai total after admin reset = %d, want 0", ai)
	}
}
