// Package store owns the shared SQLite file behind the quota ledger and the
// mail send log. Multiple instances of the app on one machine point at the
// same file, so every read-modify-write runs inside a transaction.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	scoutDB   *sql.DB
	scoutOnce sync.Once
	scoutErr  error
)

// nowFunc is swapped in tests to pin the clock.
var nowFunc = time.Now

// openScoutDB opens (or creates) the shared scout database.
func openScoutDB() (*sql.DB, error) {
	scoutOnce.Do(func() {
		dir := os.Getenv("SCOUT_DATA_DIR")
		if dir == "" {
			dir = filepath.Join(os.Getenv("HOME"), ".go_scout")
		}
		if err := os.MkdirAll(dir, 0750); err != nil {
			scoutErr = fmt.Errorf("store: mkdir %s: %w", dir, err)
			return
		}
		dbPath := filepath.Join(dir, "scout.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			scoutErr = fmt.Errorf("store: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initSchema(db); err != nil {
			scoutErr = fmt.Errorf("store: init schema: %w", err)
			return
		}
		scoutDB = db
	})
	return scoutDB, scoutErr
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS api_usage (
		id           INTEGER PRIMARY KEY CHECK (id = 1),
		search_units INTEGER NOT NULL,
		ai_calls     INTEGER NOT NULL,
		last_reset   TEXT NOT NULL
	)`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS send_log (
		channel_name TEXT NOT NULL,
		email        TEXT NOT NULL,
		status       TEXT NOT NULL,
		sent_at      TEXT NOT NULL
	)`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT OR IGNORE INTO api_usage (id, search_units, ai_calls, last_reset) VALUES (1, 0, 0, ?)`,
		nowFunc().In(kst).Format(timeLayout))
	return err
}
