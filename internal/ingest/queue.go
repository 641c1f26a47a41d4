package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
)

// QueueMessage is the body enqueued onto the strict-FIFO queue, per
// spec §6.1.
type QueueMessage struct {
	InstanceName  string `json:"instanceName"`
	RemoteJID     string `json:"remoteJid"`
	MessageID     string `json:"messageId"`
	PushName      string `json:"pushName,omitempty"`
	SenderJID     string `json:"senderJid,omitempty"`
	Text          string `json:"text"`
	Timestamp     *int64 `json:"timestamp,omitempty"`
	ReceivedAt    time.Time `json:"receivedAt"`
	ArchiveBucket string `json:"archiveBucket"`
	ArchiveKey    string `json:"archiveKey"`
}

// Queue is the strict-FIFO durable queue collaborator from spec §6.1/§5:
// messageGroupId preserves per-group order, deduplicationId deduplicates
// admission retries within the queue's dedup window.
type Queue interface {
	Enqueue(ctx context.Context, msg QueueMessage) error
}

// SQSQueue implements Queue against an SQS FIFO queue.
type SQSQueue struct {
	client   sqsiface.SQSAPI
	queueURL string
}

// NewSQSQueue builds an SQSQueue using the default AWS session.
func NewSQSQueue(queueURL string) (*SQSQueue, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, fmt.Errorf("ingest: creating aws session: %w", err)
	}
	return &SQSQueue{client: sqs.New(sess), queueURL: queueURL}, nil
}

// Enqueue sends msg with messageGroupId=remoteJid and deduplicationId=messageId.
func (q *SQSQueue) Enqueue(ctx context.Context, msg QueueMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: marshaling queue message: %v", ErrQueueFail, err)
	}
	_, err = q.client.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		QueueUrl:               aws.String(q.queueURL),
		MessageBody:            aws.String(string(body)),
		MessageGroupId:         aws.String(msg.RemoteJID),
		MessageDeduplicationId: aws.String(msg.MessageID),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQueueFail, err)
	}
	return nil
}

// ReceivedMessage pairs a decoded QueueMessage with the SQS receipt handle
// needed to delete it once the consumer has processed it.
type ReceivedMessage struct {
	Body          QueueMessage
	ReceiptHandle string
}

// Receive long-polls the queue for up to maxMessages records, waiting up
// to waitSeconds for at least one to arrive.
func (q *SQSQueue) Receive(ctx context.Context, maxMessages, waitSeconds int64) ([]ReceivedMessage, error) {
	out, err := q.client.ReceiveMessageWithContext(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.queueURL),
		MaxNumberOfMessages: aws.Int64(maxMessages),
		WaitTimeSeconds:     aws.Int64(waitSeconds),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueueFail, err)
	}

	received := make([]ReceivedMessage, 0, len(out.Messages))
	for _, m := range out.Messages {
		var body QueueMessage
		if err := json.Unmarshal([]byte(aws.StringValue(m.Body)), &body); err != nil {
			continue
		}
		received = append(received, ReceivedMessage{Body: body, ReceiptHandle: aws.StringValue(m.ReceiptHandle)})
	}
	return received, nil
}

// Delete acknowledges a message so SQS doesn't redeliver it.
func (q *SQSQueue) Delete(ctx context.Context, receiptHandle string) error {
	_, err := q.client.DeleteMessageWithContext(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQueueFail, err)
	}
	return nil
}
