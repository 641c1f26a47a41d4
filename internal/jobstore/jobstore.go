// Package jobstore is the relational persistence layer backing RawMessage
// idempotency and the Job query index (§6.4), implemented against
// PostgreSQL via pgx/v4.
package jobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/kargotakip/freightline/internal/models"
)

// Store wraps a pgx connection pool with the ingestion pipeline's
// idempotent write patterns and the agent's query path.
type Store struct {
	pool *pgxpool.Pool
}

// New connects to databaseURL and returns a ready Store. Callers should
// hold this process-singleton for the process lifetime (spec §5).
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("jobstore: connecting: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// UpsertRawMessage inserts a RawMessage row, doing nothing on conflict so
// at-least-once delivery of the same messageId is a no-op (spec §4.5,
// §9 "At-least-once everywhere"). Returns whether a row was actually
// inserted (false means it already existed).
func (s *Store) UpsertRawMessage(ctx context.Context, msg models.RawMessage) (inserted bool, err error) {
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO raw_messages (message_id, group_id, sender_id, sender_phone, text, archive_ref, received_at, source_timestamp, processed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false)
		ON CONFLICT (message_id) DO NOTHING
	`, msg.MessageID, msg.GroupID, msg.SenderID, msg.SenderPhone, msg.Text, msg.ArchiveRef, msg.ReceivedAt, msg.SourceTimestamp)
	if err != nil {
		return false, fmt.Errorf("jobstore: upserting raw message: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// IsProcessed reports whether a RawMessage has already been marked
// processed, the consumer's duplicate-delivery guard.
func (s *Store) IsProcessed(ctx context.Context, messageID string) (bool, error) {
	var processed bool
	err := s.pool.QueryRow(ctx, `SELECT processed FROM raw_messages WHERE message_id = $1`, messageID).Scan(&processed)
	if err != nil {
		return false, fmt.Errorf("jobstore: checking processed state: %w", err)
	}
	return processed, nil
}

// MarkProcessed flips RawMessage.processed to true, the terminal DONE
// transition of the ingestion pipeline.
func (s *Store) MarkProcessed(ctx context.Context, messageID string) error {
	now := time.Now().UTC()
	_, err := s.pool.Exec(ctx, `UPDATE raw_messages SET processed = true, processed_at = $2 WHERE message_id = $1`, messageID, now)
	if err != nil {
		return fmt.Errorf("jobstore: marking processed: %w", err)
	}
	return nil
}

// InsertJob materializes one Job row (spec §6.4). message_id is UNIQUE so
// retried materialization of the same (sub-)message is idempotent.
func (s *Store) InsertJob(ctx context.Context, job models.Job, parsed *models.ParsedMessage) error {
	parsedFields, err := json.Marshal(parsed)
	if err != nil {
		return fmt.Errorf("jobstore: marshaling parsed_fields: %w", err)
	}
	var routesJSON []byte
	if parsed != nil && len(parsed.Routes) > 0 {
		routesJSON, err = json.Marshal(parsed.Routes)
		if err != nil {
			return fmt.Errorf("jobstore: marshaling routes: %w", err)
		}
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO jobs (
			message_id, source_group_id, raw_text, message_type,
			origin_mentioned, origin_province, origin_province_code, origin_district,
			destination_mentioned, destination_province, destination_province_code, destination_district,
			vehicle_type, body_type, is_refrigerated,
			contact_phone, contact_phone_normalized, contact_name, sender_jid, sender_phone,
			weight, weight_unit, cargo_type, load_type, is_urgent,
			confidence_score, confidence_level, parsed_fields, routes,
			route_index, total_routes, posted_at, created_at, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29,
			$30, $31, $32, now(), true
		)
		ON CONFLICT (message_id) DO NOTHING
	`,
		job.MessageID, job.SourceGroupID, job.RawText, job.MessageType,
		job.OriginMentioned, job.OriginProvince, nullableInt(job.OriginProvinceCode), job.OriginDistrict,
		job.DestinationMentioned, job.DestinationProvince, nullableInt(job.DestinationProvinceCode), job.DestinationDistrict,
		job.VehicleType, job.BodyType, job.IsRefrigerated,
		job.ContactPhone, job.ContactPhoneNormalized, job.ContactName, job.SenderJID, job.SenderPhone,
		job.Weight, job.WeightUnit, job.CargoType, job.LoadType, job.IsUrgent,
		job.ConfidenceScore, job.ConfidenceLevel, parsedFields, nullableJSON(routesJSON),
		job.RouteIndex, job.TotalRoutes, job.PostedAt,
	)
	if err != nil {
		return fmt.Errorf("jobstore: inserting job: %w", err)
	}
	return nil
}

func nullableInt(v int) interface{} {
	if v == 0 {
		return nil
	}
	return v
}

func nullableJSON(v []byte) interface{} {
	if len(v) == 0 {
		return nil
	}
	return v
}

// SweepExpired clears is_active on jobs older than retention, the
// supplemented retention feature noted in SPEC_FULL.md (spec.md §3's
// isActive invariant is cleared by retention, not row deletion). Returns
// the number of rows flipped.
func (s *Store) SweepExpired(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	tag, err := s.pool.Exec(ctx, `UPDATE jobs SET is_active = false WHERE posted_at < $1 AND is_active = true`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("jobstore: sweeping expired jobs: %w", err)
	}
	return tag.RowsAffected(), nil
}
