package store

import (
	"context"
	"fmt"
)

// SendEntry is one mail-send attempt.
type SendEntry struct {
	ChannelName string `json:"channel_name"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	SentAt      string `json:"sent_at"`
}

// AppendSend records a mail-send attempt. Append-only; failures are logged
// with their reason in the status string, never retried.
func AppendSend(ctx context.Context, channelName, email, status string) error {
	db, err := openScoutDB()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO send_log (channel_name, email, status, sent_at) VALUES (?, ?, ?, ?)`,
		channelName, email, status, nowFunc().In(kst).Format(timeLayout),
	); err != nil {
		return fmt.Errorf("sendlog: insert: %w", err)
	}
	return nil
}

// ListSends returns recent send attempts, newest first.
func ListSends(ctx context.Context, limit int) ([]SendEntry, error) {
	db, err := openScoutDB()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx,
		`SELECT channel_name, email, status, sent_at FROM send_log ORDER BY sent_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("sendlog: query: %w", err)
	}
	defer rows.Close()

	var out []SendEntry
	for rows.Next() {
		var e SendEntry
		if err := rows.Scan(&e.ChannelName, &e.Email, &e.Status, &e.SentAt); err != nil {
			return nil, fmt.Errorf("sendlog: scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
