package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/kargotakip/freightline/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("starting miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	s, err := New(mr.Addr(), "")
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetConversation_MissingReturnsZeroValue(t *testing.T) {
	s := newTestStore(t)
	conv, err := s.GetConversation(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.UserID != "user-1" {
		t.Fatalf("expected UserID to be populated, got %q", conv.UserID)
	}
	if len(conv.Messages) != 0 {
		t.Fatalf("expected no messages, got %d", len(conv.Messages))
	}
}

func TestAddMessage_AppendsAndMergesContext(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.AddMessage(ctx, "user-2", models.ConversationMessage{
		Role: models.RoleUser, Content: "Ankaradan Istanbula tir ariyorum", At: time.Now(),
	}, map[string]interface{}{
		"last_origin":      "ankara",
		"last_destination": "istanbul",
		"last_offset":      0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conv, err := s.GetConversation(ctx, "user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(conv.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(conv.Messages))
	}
	if conv.Context.LastOrigin != "ankara" || conv.Context.LastDestination != "istanbul" {
		t.Fatalf("context not merged: %+v", conv.Context)
	}

	// A second message with only last_offset patched must leave
	// LastOrigin/LastDestination untouched (shallow merge).
	err = s.AddMessage(ctx, "user-2", models.ConversationMessage{
		Role: models.RoleAssistant, Content: "devamini gosteriyorum", At: time.Now(),
	}, map[string]interface{}{"last_offset": 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conv, err = s.GetConversation(ctx, "user-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.Context.LastOrigin != "ankara" {
		t.Fatalf("expected last_origin to survive untouched patch, got %q", conv.Context.LastOrigin)
	}
	if conv.Context.LastOffset != 5 {
		t.Fatalf("expected last_offset 5, got %d", conv.Context.LastOffset)
	}
	if len(conv.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(conv.Messages))
	}
}

func TestAddMessage_EmptyStringClearsField(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.AddMessage(ctx, "user-3", models.ConversationMessage{Role: models.RoleUser, Content: "x", At: time.Now()},
		map[string]interface{}{"last_destination": "izmir"})

	_ = s.AddMessage(ctx, "user-3", models.ConversationMessage{Role: models.RoleUser, Content: "y", At: time.Now()},
		map[string]interface{}{"last_destination": ""})

	conv, err := s.GetConversation(ctx, "user-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.Context.LastDestination != "" {
		t.Fatalf("expected last_destination cleared, got %q", conv.Context.LastDestination)
	}
}
