package jobstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/kargotakip/freightline/internal/models"
)

func TestNullableInt(t *testing.T) {
	if v := nullableInt(0); v != nil {
		t.Fatalf("expected nil for zero value, got %v", v)
	}
	if v := nullableInt(34); v != 34 {
		t.Fatalf("expected 34, got %v", v)
	}
}

func TestNullableJSON(t *testing.T) {
	if v := nullableJSON(nil); v != nil {
		t.Fatalf("expected nil for empty slice, got %v", v)
	}
	if v := nullableJSON([]byte(`{}`)); v == nil {
		t.Fatalf("expected non-nil for non-empty slice")
	}
}

// TestStore_RawMessageIdempotency exercises UpsertRawMessage against a real
// Postgres instance. Skipped unless DATABASE_URL is set, matching how this
// pack skips tests that need live external resources.
func TestStore_RawMessageIdempotency(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping jobstore integration test")
	}

	ctx := context.Background()
	store, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting: %v", err)
	}
	defer store.Close()

	msg := models.RawMessage{
		MessageID:  "test-msg-1",
		GroupID:    "120363000000000000@g.us",
		Text:       "Ankaradan Istanbula tir ariyorum",
		ArchiveRef: "messages/2026/07/31/test/test-msg-1.json",
		ReceivedAt: time.Now().UTC(),
	}

	inserted, err := store.UpsertRawMessage(ctx, msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inserted {
		t.Fatalf("expected first upsert to insert")
	}

	inserted, err = store.UpsertRawMessage(ctx, msg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted {
		t.Fatalf("expected duplicate upsert to be a no-op")
	}

	if err := store.MarkProcessed(ctx, msg.MessageID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	processed, err := store.IsProcessed(ctx, msg.MessageID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !processed {
		t.Fatalf("expected message to be marked processed")
	}
}
