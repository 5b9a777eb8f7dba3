package store

import (
	"context"
	"testing"
	"time"
)

func TestSendLog_AppendAndList(t *testing.T) {
	base, _ := time.ParseInLocation(timeLayout, "2025-03-10 18:00:00", kst)
	resetStore(t, base)
	ctx := context.Background()

	entries := []struct {
		channel, email, status string
	}{
		{"Cooking with Min", "min@example.com", "sent"},
		{"Daily Tech KR", "tech@example.com", "failed: 550 mailbox unavailable"},
		{"Seoul Vlogs", "seoul@example.com", "sent"},
	}
	for i, e := range entries {
		nowFunc = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		if err := AppendSend(ctx, e.channel, e.email, e.status); err != nil {
			t.Fatalf("AppendSend error: %v", err)
		}
	}

	got, err := ListSends(ctx, 10)
	if err != nil {
		t.Fatalf("ListSends error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	// Newest first.
	if got[0].ChannelName != "Seoul Vlogs" {
		t.Errorf("first entry = %q, want most recent", got[0].ChannelName)
	}
	if got[2].ChannelName != "Cooking with Min" {
		t.Errorf("last entry = %q, want oldest", got[2].ChannelName)
	}
	if got[1].Status != "failed: 550 mailbox unavailable" {
		t.Errorf("failure reason not preserved: %q", got[1].Status)
	}
}

func TestSendLog_Limit(t *testing.T) {
	base, _ := time.ParseInLocation(timeLayout, "2025-03-10 18:00:00", kst)
	resetStore(t, base)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		nowFunc = func() time.Time { return base.Add(time.Duration(i) * time.Second) }
		if err := AppendSend(ctx, "ch", "a@b.co", "sent"); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ListSends(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 entries with limit 2, got %d", len(got))
	}
}
