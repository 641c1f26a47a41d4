package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kargotakip/freightline/internal/freight"
	"github.com/kargotakip/freightline/internal/jobstore"
	"github.com/kargotakip/freightline/internal/models"
	"github.com/kargotakip/freightline/internal/normalize"
	"github.com/kargotakip/freightline/internal/store"
	"github.com/kargotakip/freightline/internal/telemetry"
)

// NotificationDeliverer sends an outbound notification to a standing
// request's owner. Implemented by internal/notify; declared here so the
// consumer doesn't import the transport package directly.
type NotificationDeliverer interface {
	Deliver(ctx context.Context, pn models.PendingNotification, job models.Job) error
}

// Consumer implements the PARSING -> MATERIALIZED -> DONE transitions of
// the ingestion pipeline (spec §4.5).
type Consumer struct {
	jobs        *jobstore.Store
	pending     *store.Store
	parser      *freight.Parser
	notifier    NotificationDeliverer
	log         zerolog.Logger
	deadLetters DeadLetterSink
	tracer      *telemetry.StageTracer
}

// NewConsumer wires the consumer's collaborators. tracer may be nil, in
// which case stages run untraced.
func NewConsumer(jobs *jobstore.Store, pending *store.Store, parser *freight.Parser, notifier NotificationDeliverer, dl DeadLetterSink, tracer *telemetry.StageTracer, logger zerolog.Logger) *Consumer {
	if tracer == nil {
		tracer = telemetry.NewStageTracer(nil, "ingest", false)
	}
	return &Consumer{jobs: jobs, pending: pending, parser: parser, notifier: notifier, deadLetters: dl, tracer: tracer, log: logger}
}

// HandleRecord processes one SQS-delivered queue body. Up to maxParseAttempts
// retries of ErrParseFail are tolerated before the record is dead-lettered;
// all other failures surface directly so SQS redelivers per its own policy.
const maxParseAttempts = 3

func (c *Consumer) HandleRecord(ctx context.Context, body []byte, attempt int) error {
	var qmsg QueueMessage
	if err := json.Unmarshal(body, &qmsg); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFail, err)
	}

	normalized := normalize.Preprocess(qmsg.Text)
	if !freight.IsLikelyLogisticsMessage(normalized) {
		c.log.Debug().Str("message_id", qmsg.MessageID).Msg("consumer: not a logistics message, dropping")
		return nil
	}

	raw := models.RawMessage{
		MessageID:   qmsg.MessageID,
		GroupID:     qmsg.RemoteJID,
		SenderID:    qmsg.SenderJID,
		Text:        qmsg.Text,
		ArchiveRef:  qmsg.ArchiveKey,
		ReceivedAt:  qmsg.ReceivedAt,
	}
	if qmsg.Timestamp != nil {
		ts := time.Unix(*qmsg.Timestamp, 0).UTC()
		raw.SourceTimestamp = &ts
	}

	inserted, err := c.jobs.UpsertRawMessage(ctx, raw)
	if err != nil {
		return fmt.Errorf("consumer: %w", err)
	}
	if !inserted {
		processed, err := c.jobs.IsProcessed(ctx, qmsg.MessageID)
		if err != nil {
			return fmt.Errorf("consumer: %w", err)
		}
		if processed {
			return ErrDuplicateMessage
		}
	}

	var parsed *models.ParsedMessage
	parseErr := c.tracer.Stage(ctx, "parse", []attribute.KeyValue{attribute.String("message_id", qmsg.MessageID)}, func(ctx context.Context) error {
		var err error
		parsed, err = c.parser.ParseMessage(ctx, qmsg.Text)
		return err
	})
	if parseErr != nil {
		if attempt < maxParseAttempts {
			return fmt.Errorf("%w: %v", ErrParseFail, parseErr)
		}
		if c.deadLetters != nil {
			_ = c.deadLetters.Put(ctx, DeadLetter{
				MessageID: qmsg.MessageID, Reason: ErrParseFail.Error(),
				RawText: qmsg.Text, Attempt: attempt, FailedAt: time.Now().UTC(),
			})
		}
		_ = c.jobs.MarkProcessed(ctx, qmsg.MessageID)
		return nil
	}

	contactPhone, contactName := determineContact(parsed, qmsg.SenderJID)
	gated := parsed.ConfidenceLevel != models.ConfidenceHigh && parsed.ConfidenceLevel != models.ConfidenceMedium
	if contactPhone == "" {
		gated = true
	}

	if gated {
		c.log.Debug().Str("message_id", qmsg.MessageID).Str("confidence", string(parsed.ConfidenceLevel)).Msg("consumer: materialization gate skipped")
		if err := c.jobs.MarkProcessed(ctx, qmsg.MessageID); err != nil {
			return fmt.Errorf("consumer: %w", err)
		}
		return nil
	}

	postedAt := qmsg.ReceivedAt
	if raw.SourceTimestamp != nil {
		postedAt = *raw.SourceTimestamp
	}

	jobs := materializeJobs(qmsg, parsed, contactPhone, contactName, postedAt)
	materializeErr := c.tracer.Stage(ctx, "materialize", []attribute.KeyValue{
		attribute.String("message_id", qmsg.MessageID),
		attribute.Int("route_count", len(jobs)),
	}, func(ctx context.Context) error {
		for i := range jobs {
			if err := c.jobs.InsertJob(ctx, jobs[i], parsed); err != nil {
				return fmt.Errorf("consumer: %w", err)
			}
			c.fanOut(ctx, jobs[i])
		}
		return nil
	})
	if materializeErr != nil {
		return materializeErr
	}

	if err := c.jobs.MarkProcessed(ctx, qmsg.MessageID); err != nil {
		return fmt.Errorf("consumer: %w", err)
	}
	return nil
}

func determineContact(parsed *models.ParsedMessage, senderJID string) (phone, name string) {
	if len(parsed.Phones) > 0 {
		return parsed.Phones[0].Normalized, parsed.ContactName
	}
	if senderJID != "" {
		return senderJID, parsed.ContactName
	}
	return "", parsed.ContactName
}

func materializeJobs(qmsg QueueMessage, parsed *models.ParsedMessage, contactPhone, contactName string, postedAt time.Time) []models.Job {
	base := models.Job{
		MessageID:              qmsg.MessageID,
		SourceGroupID:          qmsg.RemoteJID,
		RawText:                qmsg.Text,
		MessageType:            parsed.MessageType,
		VehicleType:            parsed.Vehicle.VehicleType,
		BodyType:               parsed.Vehicle.BodyType,
		IsRefrigerated:         parsed.Vehicle.IsRefrigerated,
		ContactPhone:           contactPhone,
		ContactPhoneNormalized: contactPhone,
		ContactName:            contactName,
		SenderJID:              qmsg.SenderJID,
		CargoType:              parsed.CargoType,
		LoadType:               parsed.LoadType,
		IsUrgent:               parsed.IsUrgent,
		ConfidenceScore:        parsed.ConfidenceScore,
		ConfidenceLevel:        parsed.ConfidenceLevel,
		PostedAt:               postedAt,
		IsActive:               true,
	}
	if parsed.Weight != nil {
		base.Weight = &parsed.Weight.Value
		base.WeightUnit = parsed.Weight.Unit
	}
	if parsed.Origin != nil {
		base.OriginMentioned = parsed.Origin.OriginalText
		base.OriginProvince = parsed.Origin.ProvinceName
		base.OriginProvinceCode = parsed.Origin.ProvinceCode
		base.OriginDistrict = parsed.Origin.DistrictName
	}
	if parsed.Destination != nil {
		base.DestinationMentioned = parsed.Destination.OriginalText
		base.DestinationProvince = parsed.Destination.ProvinceName
		base.DestinationProvinceCode = parsed.Destination.ProvinceCode
		base.DestinationDistrict = parsed.Destination.DistrictName
	}

	if len(parsed.Routes) < 2 {
		return []models.Job{base}
	}

	total := len(parsed.Routes)
	jobs := make([]models.Job, total)
	for i, route := range parsed.Routes {
		job := base
		idx := i
		job.MessageID = fmt.Sprintf("%s#route%d", qmsg.MessageID, i)
		job.OriginMentioned = route.Origin
		job.OriginProvince = route.Origin
		job.OriginProvinceCode = route.OriginCode
		job.DestinationMentioned = route.Destination
		job.DestinationProvince = route.Destination
		job.DestinationProvinceCode = route.DestinationCode
		if route.Vehicle != "" {
			job.VehicleType = route.Vehicle
		}
		if route.BodyType != "" {
			job.BodyType = route.BodyType
		}
		job.RouteIndex = &idx
		job.TotalRoutes = &total
		jobs[i] = job
	}
	return jobs
}

// fanOut implements spec §4.5's fan-out stage: look up standing
// PendingNotification requests that match this job's route and attempt
// delivery. Delivery failures never fail the pipeline.
func (c *Consumer) fanOut(ctx context.Context, job models.Job) {
	if c.pending == nil || c.notifier == nil {
		return
	}
	matches, err := c.pending.GetPendingNotificationsByRoute(ctx, job.OriginProvince, job.DestinationProvince)
	if err != nil {
		c.log.Warn().Err(err).Str("message_id", job.MessageID).Msg("consumer: fan-out lookup failed")
		return
	}
	for _, pn := range matches {
		pn := pn
		routeKey := pn.RouteKey()
		err := c.pending.WithNotificationLock(ctx, routeKey, func() error {
			// Re-read under the lock: another consumer may already have
			// delivered and deleted this record since the lookup above.
			current, err := c.pending.GetPendingNotificationsByRoute(ctx, pn.OriginAscii, pn.DestinationAscii)
			if err != nil {
				return err
			}
			stillPending := false
			for _, cur := range current {
				if cur.UserID == pn.UserID && cur.OriginAscii == pn.OriginAscii && cur.DestinationAscii == pn.DestinationAscii {
					stillPending = true
					break
				}
			}
			if !stillPending {
				return nil
			}
			if err := c.notifier.Deliver(ctx, pn, job); err != nil {
				return fmt.Errorf("%w: %v", ErrNotificationDeliveryFail, err)
			}
			return c.pending.DeletePendingNotification(ctx, pn)
		})
		if err != nil {
			c.log.Warn().Err(err).Str("user_id", pn.UserID).Msg("consumer: notification delivery failed, pending record kept")
		}
	}
}
