package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/redis/go-redis/v9"

	"github.com/kargotakip/freightline/internal/models"
)

func (s *Store) pendingNotifKey(userID, routeKey string) string {
	return s.namespace + pendingNotifKeyPrefix + routeKey + ":" + userID
}

func (s *Store) routeIndexKey(routeKey string) string {
	return s.namespace + routeIndexKeyPrefix + routeKey
}

// UpsertPendingNotification stores a standing notification request and
// indexes it by route so the fan-out stage can find it from a
// newly-materialized job's (origin, destination) pair (spec §3, §4.5).
func (s *Store) UpsertPendingNotification(ctx context.Context, pn models.PendingNotification) error {
	routeKey := pn.RouteKey()
	key := s.pendingNotifKey(pn.UserID, routeKey)

	raw, err := json.Marshal(pn)
	if err != nil {
		return fmt.Errorf("store: encoding pending notification: %w", err)
	}

	ttl := time.Until(pn.TTLExpiresAt)
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, key, raw, ttl)
	pipe.SAdd(ctx, s.routeIndexKey(routeKey), key)
	pipe.Expire(ctx, s.routeIndexKey(routeKey), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store: saving pending notification: %w", err)
	}
	return nil
}

// GetPendingNotificationsByRoute returns every standing notification whose
// route key matches either the exact (origin, destination) pair or the
// origin-only wildcard, used by the ingestion pipeline's fan-out stage.
func (s *Store) GetPendingNotificationsByRoute(ctx context.Context, originAscii, destinationAscii string) ([]models.PendingNotification, error) {
	keys := []string{models.RouteKey(originAscii, destinationAscii)}
	if destinationAscii != "" {
		keys = append(keys, models.RouteKey(originAscii, ""))
	}

	var out []models.PendingNotification
	for _, rk := range keys {
		members, err := s.redis.SMembers(ctx, s.routeIndexKey(rk)).Result()
		if err != nil && err != redis.Nil {
			return nil, fmt.Errorf("store: reading route index: %w", err)
		}
		for _, member := range members {
			raw, err := s.redis.Get(ctx, member).Bytes()
			if err == redis.Nil {
				// Expired; drop the stale index member lazily.
				s.redis.SRem(ctx, s.routeIndexKey(rk), member)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("store: fetching pending notification: %w", err)
			}
			var pn models.PendingNotification
			if err := json.Unmarshal(raw, &pn); err != nil {
				continue
			}
			out = append(out, pn)
		}
	}
	return out, nil
}

// DeletePendingNotification removes a delivered notification and its route
// index entry.
func (s *Store) DeletePendingNotification(ctx context.Context, pn models.PendingNotification) error {
	routeKey := pn.RouteKey()
	key := s.pendingNotifKey(pn.UserID, routeKey)
	pipe := s.redis.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, s.routeIndexKey(routeKey), key)
	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("store: deleting pending notification: %w", err)
	}
	return nil
}

// WithNotificationLock runs fn while holding a distributed lock keyed on
// routeKey, so concurrent consumer instances don't double-deliver the same
// standing notification (spec §9 "At-least-once everywhere" needs a
// dedup boundary somewhere; this is it for notification delivery).
func (s *Store) WithNotificationLock(ctx context.Context, routeKey string, fn func() error) error {
	mutex := s.rs.NewMutex("lock:"+s.routeIndexKey(routeKey), redsync.WithExpiry(8*time.Second))
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("store: acquiring notification lock: %w", err)
	}
	defer func() { _, _ = mutex.UnlockContext(ctx) }()
	return fn()
}
