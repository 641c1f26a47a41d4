package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// DeadLetter is the inspection record written when a queue record fails
// parsing maxParseAttempts times in a row. Nothing downstream reads these
// automatically; they exist for a human to grep through.
type DeadLetter struct {
	MessageID string    `json:"message_id"`
	Reason    string    `json:"reason"`
	RawText   string    `json:"raw_text"`
	Attempt   int       `json:"attempt"`
	FailedAt  time.Time `json:"failed_at"`
}

// DeadLetterSink persists DeadLetter records for later inspection.
type DeadLetterSink interface {
	Put(ctx context.Context, dl DeadLetter) error
}

// S3DeadLetterSink writes dead letters next to the archived webhook
// payloads, under a separate prefix.
type S3DeadLetterSink struct {
	client s3iface.S3API
	bucket string
}

// NewS3DeadLetterSink builds an S3DeadLetterSink using the default AWS
// session.
func NewS3DeadLetterSink(bucket string) (*S3DeadLetterSink, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, fmt.Errorf("ingest: creating aws session: %w", err)
	}
	return &S3DeadLetterSink{client: s3.New(sess), bucket: bucket}, nil
}

// Put writes dl under dead-letter/<messageId>/<unixnano>.json.
func (s *S3DeadLetterSink) Put(ctx context.Context, dl DeadLetter) error {
	body, err := json.Marshal(dl)
	if err != nil {
		return fmt.Errorf("ingest: marshaling dead letter: %w", err)
	}
	key := fmt.Sprintf("dead-letter/%s/%d.json", dl.MessageID, dl.FailedAt.UnixNano())
	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	})
	if err != nil {
		return fmt.Errorf("ingest: writing dead letter: %w", err)
	}
	return nil
}
