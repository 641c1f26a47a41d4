// Package store is the conversation key-value layer (C6): per-user
// conversation transcripts and context, and the pending-notification
// route index, backed by Redis with a small in-process cache for hot
// reads.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"

	"github.com/kargotakip/freightline/internal/models"
)

const (
	conversationKeyPrefix = "conversation:"
	pendingNotifKeyPrefix = "pending-notif:"
	routeIndexKeyPrefix   = "route-idx:"
)

// Store is the process-singleton client for conversation and
// pending-notification state (spec §5: cold-start resources are
// process-singleton, lazily initialized, lifetime = process lifetime).
type Store struct {
	redis     *redis.Client
	l1        *ristretto.Cache[string, []byte]
	rs        *redsync.Redsync
	namespace string
}

// New builds a Store against the given Redis connection string. namespace
// is CONVERSATIONS_TABLE: Redis has no tables, so it is folded into every
// key as a prefix instead, letting multiple deployments share one Redis
// instance without key collisions.
func New(redisAddr, namespace string) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: redisAddr})

	l1, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1e5,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("store: creating l1 cache: %w", err)
	}

	pool := goredis.NewPool(client)
	rs := redsync.New(pool)

	return &Store{redis: client, l1: l1, rs: rs, namespace: namespace}, nil
}

// Close releases the underlying Redis client and L1 cache.
func (s *Store) Close() error {
	s.l1.Close()
	return s.redis.Close()
}

func (s *Store) conversationKey(userID string) string {
	return s.namespace + conversationKeyPrefix + userID
}

// GetConversation fetches a user's conversation record, checking the L1
// cache first. A missing conversation returns a zero-value record with
// UserID set, never an error.
func (s *Store) GetConversation(ctx context.Context, userID string) (models.Conversation, error) {
	key := s.conversationKey(userID)

	if cached, ok := s.l1.Get(key); ok {
		var conv models.Conversation
		if err := json.Unmarshal(cached, &conv); err == nil {
			return conv, nil
		}
	}

	raw, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return models.Conversation{UserID: userID}, nil
	}
	if err != nil {
		return models.Conversation{}, fmt.Errorf("store: fetching conversation: %w", err)
	}

	var conv models.Conversation
	if err := json.Unmarshal(raw, &conv); err != nil {
		return models.Conversation{}, fmt.Errorf("store: decoding conversation: %w", err)
	}
	s.l1.SetWithTTL(key, raw, int64(len(raw)), 30*time.Second)
	return conv, nil
}

// AddMessage appends msg to the transcript and shallow-merges contextPatch
// into the stored context, per spec §4.6 ("Context merge treats empty
// string as clear"). Only keys present in contextPatch are touched.
func (s *Store) AddMessage(ctx context.Context, userID string, msg models.ConversationMessage, contextPatch map[string]interface{}) error {
	conv, err := s.GetConversation(ctx, userID)
	if err != nil {
		return err
	}
	conv.UserID = userID
	conv.Messages = append(conv.Messages, msg)
	applyContextPatch(&conv.Context, contextPatch)

	raw, err := json.Marshal(conv)
	if err != nil {
		return fmt.Errorf("store: encoding conversation: %w", err)
	}
	key := s.conversationKey(userID)
	if err := s.redis.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("store: saving conversation: %w", err)
	}
	s.l1.SetWithTTL(key, raw, int64(len(raw)), 30*time.Second)
	return nil
}

// applyContextPatch shallow-merges patch into ctx. A string value of ""
// in patch clears the corresponding field; any other present key
// overwrites unconditionally. Keys absent from patch are left untouched,
// which is the whole point of a shallow merge over a full overwrite.
func applyContextPatch(ctx *models.ConversationContext, patch map[string]interface{}) {
	setBool := func(dst *bool, key string) {
		if v, ok := patch[key]; ok {
			if b, ok := v.(bool); ok {
				*dst = b
			}
		}
	}
	setInt := func(dst *int, key string) {
		if v, ok := patch[key]; ok {
			if i, ok := v.(int); ok {
				*dst = i
			}
		}
	}

	if v, ok := patch["last_origin"]; ok {
		ctx.LastOrigin, _ = v.(string)
	}
	if v, ok := patch["last_destination"]; ok {
		ctx.LastDestination, _ = v.(string)
	}
	if v, ok := patch["last_vehicle_type"]; ok {
		if s, ok := v.(string); ok {
			ctx.LastVehicleType = models.VehicleType(s)
		}
	}
	if v, ok := patch["last_body_type"]; ok {
		if s, ok := v.(string); ok {
			ctx.LastBodyType = models.BodyType(s)
		}
	}
	if v, ok := patch["last_cargo_type"]; ok {
		ctx.LastCargoType, _ = v.(string)
	}
	setBool(&ctx.LastIsRefrigerated, "last_is_refrigerated")
	setInt(&ctx.LastOffset, "last_offset")
	setInt(&ctx.LastShownCount, "last_shown_count")
	setInt(&ctx.LastTotalCount, "last_total_count")
	if v, ok := patch["last_job_ids"]; ok {
		if ids, ok := v.([]string); ok {
			ctx.LastJobIDs = ids
		}
	}
	if v, ok := patch["preferred_vehicle"]; ok {
		if s, ok := v.(string); ok {
			ctx.PreferredVehicle = models.VehicleType(s)
		}
	}
	setBool(&ctx.PendingVehicleSuggestion, "pending_vehicle_suggestion")
	if v, ok := patch["pending_nearby_suggestion"]; ok {
		ctx.PendingNearbySuggestion, _ = v.(string)
	}
}
