package jobstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/kargotakip/freightline/internal/models"
)

// SearchParams narrows a Job query; zero-value fields are not applied.
type SearchParams struct {
	Origin         string
	Destination    string
	VehicleType    models.VehicleType
	BodyType       models.BodyType
	CargoType      string
	IsRefrigerated bool
	MaxWeight      float64
	Limit          int
	Offset         int
}

// SearchResult carries both the page of jobs and the total match count, so
// callers can render the "toplamda N is var, M tane gosteriyorum" hint
// (spec §6.3) without a second round trip.
type SearchResult struct {
	Jobs  []models.Job
	Total int
}

// Search runs a filtered, paginated query against active jobs, ordered by
// posted_at descending (most recent postings first).
func (s *Store) Search(ctx context.Context, p SearchParams) (SearchResult, error) {
	var where []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	where = append(where, "is_active = true")
	if p.Origin != "" {
		where = append(where, "origin_province = "+arg(p.Origin))
	}
	if p.Destination != "" {
		where = append(where, "destination_province = "+arg(p.Destination))
	}
	if p.VehicleType != "" {
		where = append(where, "vehicle_type = "+arg(p.VehicleType))
	}
	if p.BodyType != "" {
		where = append(where, "body_type = "+arg(p.BodyType))
	}
	if p.CargoType != "" {
		where = append(where, "cargo_type = "+arg(p.CargoType))
	}
	if p.IsRefrigerated {
		where = append(where, "is_refrigerated = true")
	}
	if p.MaxWeight > 0 {
		where = append(where, "(weight IS NULL OR weight <= "+arg(p.MaxWeight)+")")
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT count(*) FROM jobs WHERE " + whereClause
	if err := s.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return SearchResult{}, fmt.Errorf("jobstore: counting search results: %w", err)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}
	limitArg := arg(limit)
	offsetArg := arg(p.Offset)

	query := fmt.Sprintf(`
		SELECT id, message_id, source_group_id, raw_text, message_type,
			origin_mentioned, origin_province, origin_province_code, origin_district,
			destination_mentioned, destination_province, destination_province_code, destination_district,
			vehicle_type, body_type, is_refrigerated,
			contact_phone, contact_phone_normalized, contact_name, sender_jid, sender_phone,
			weight, weight_unit, cargo_type, load_type, is_urgent,
			confidence_score, confidence_level, route_index, total_routes,
			posted_at, created_at, is_active
		FROM jobs WHERE %s ORDER BY posted_at DESC LIMIT %s OFFSET %s`, whereClause, limitArg, offsetArg)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return SearchResult{}, fmt.Errorf("jobstore: querying jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(
			&j.ID, &j.MessageID, &j.SourceGroupID, &j.RawText, &j.MessageType,
			&j.OriginMentioned, &j.OriginProvince, &j.OriginProvinceCode, &j.OriginDistrict,
			&j.DestinationMentioned, &j.DestinationProvince, &j.DestinationProvinceCode, &j.DestinationDistrict,
			&j.VehicleType, &j.BodyType, &j.IsRefrigerated,
			&j.ContactPhone, &j.ContactPhoneNormalized, &j.ContactName, &j.SenderJID, &j.SenderPhone,
			&j.Weight, &j.WeightUnit, &j.CargoType, &j.LoadType, &j.IsUrgent,
			&j.ConfidenceScore, &j.ConfidenceLevel, &j.RouteIndex, &j.TotalRoutes,
			&j.PostedAt, &j.CreatedAt, &j.IsActive,
		); err != nil {
			return SearchResult{}, fmt.Errorf("jobstore: scanning job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return SearchResult{}, fmt.Errorf("jobstore: iterating job rows: %w", err)
	}

	return SearchResult{Jobs: jobs, Total: total}, nil
}

// FindByRoute returns up to 100 active jobs on the given route. The
// fan-out stage does not call it; it looks up pending notifications by
// route in internal/store instead.
func (s *Store) FindByRoute(ctx context.Context, originAscii, destinationAscii string) ([]models.Job, error) {
	p := SearchParams{Origin: originAscii, Destination: destinationAscii, Limit: 100}
	result, err := s.Search(ctx, p)
	if err != nil {
		return nil, err
	}
	return result.Jobs, nil
}
