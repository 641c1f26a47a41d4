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

// Archive is the object-store collaborator from spec §6.1: the durable,
// append-only copy of every admitted payload, written before anything is
// queued. Failure here is fatal to admission.
type Archive interface {
	Put(ctx context.Context, key string, payload WebhookPayload, receivedAt time.Time) error
}

// S3Archive implements Archive against an S3-compatible bucket.
type S3Archive struct {
	client s3iface.S3API
	bucket string
}

// NewS3Archive builds an S3Archive using the default AWS session
// (region/credentials resolved from the environment, same as the rest of
// the pack's AWS-backed collaborators).
func NewS3Archive(bucket string) (*S3Archive, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, fmt.Errorf("ingest: creating aws session: %w", err)
	}
	return &S3Archive{client: s3.New(sess), bucket: bucket}, nil
}

type archiveObject struct {
	Payload    WebhookPayload `json:"payload"`
	ReceivedAt time.Time      `json:"receivedAt"`
}

// Put writes the archive object at messages/<YYYY>/<MM>/<DD>/<instance>/<messageId>.json.
func (a *S3Archive) Put(ctx context.Context, key string, payload WebhookPayload, receivedAt time.Time) error {
	body, err := json.Marshal(archiveObject{Payload: payload, ReceivedAt: receivedAt})
	if err != nil {
		return fmt.Errorf("%w: marshaling archive object: %v", ErrArchiveFail, err)
	}
	_, err = a.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArchiveFail, err)
	}
	return nil
}

// ArchiveKey builds the path from spec §6.1, partitioned by calendar day
// and instance so a human can browse the archive chronologically.
func ArchiveKey(instance, messageID string, receivedAt time.Time) string {
	return fmt.Sprintf("messages/%04d/%02d/%02d/%s/%s.json",
		receivedAt.Year(), receivedAt.Month(), receivedAt.Day(), instance, messageID)
}
