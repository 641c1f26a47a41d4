package store

import (
	"context"
	"testing"
	"time"

	"github.com/kargotakip/freightline/internal/models"
)

func TestPendingNotification_UpsertAndLookupByExactRoute(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pn := models.PendingNotification{
		UserID:           "driver-1",
		OriginAscii:      "ankara",
		DestinationAscii: "izmir",
		CreatedAt:        time.Now(),
		TTLExpiresAt:     time.Now().Add(time.Hour),
	}
	if err := s.UpsertPendingNotification(ctx, pn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches, err := s.GetPendingNotificationsByRoute(ctx, "ankara", "izmir")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].UserID != "driver-1" {
		t.Fatalf("expected one match for driver-1, got %+v", matches)
	}
}

func TestPendingNotification_OriginOnlyWildcardMatchesAnyDestination(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pn := models.PendingNotification{
		UserID:       "driver-2",
		OriginAscii:  "bursa",
		CreatedAt:    time.Now(),
		TTLExpiresAt: time.Now().Add(time.Hour),
	}
	if err := s.UpsertPendingNotification(ctx, pn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches, err := s.GetPendingNotificationsByRoute(ctx, "bursa", "adana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].UserID != "driver-2" {
		t.Fatalf("expected wildcard match for driver-2, got %+v", matches)
	}
}

func TestDeletePendingNotification_RemovesFromIndex(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	pn := models.PendingNotification{
		UserID:           "driver-3",
		OriginAscii:      "konya",
		DestinationAscii: "mersin",
		CreatedAt:        time.Now(),
		TTLExpiresAt:     time.Now().Add(time.Hour),
	}
	if err := s.UpsertPendingNotification(ctx, pn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.DeletePendingNotification(ctx, pn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches, err := s.GetPendingNotificationsByRoute(ctx, "konya", "mersin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches after delete, got %+v", matches)
	}
}

func TestWithNotificationLock_RunsFn(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ran := false
	err := s.WithNotificationLock(ctx, "ankara|izmir", func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatalf("expected fn to run")
	}
}
