// Package notify delivers outbound notifications to drivers who left a
// standing request on a route that just got a matching posting (spec
// §4.5 fan-out, §8 scenario 9).
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/http2"

	"github.com/kargotakip/freightline/internal/models"
)

// Client delivers a notification payload to a configured webhook
// endpoint over HTTP/2, falling back to HTTP/1.1 transparently if the
// peer doesn't negotiate it.
type Client struct {
	httpClient  *http.Client
	endpointURL string
}

// New builds a Client posting to endpointURL.
func New(endpointURL string) *Client {
	transport := &http.Transport{}
	_ = http2.ConfigureTransport(transport)
	return &Client{
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
		endpointURL: endpointURL,
	}
}

// deliveryPayload is the body posted to the notification endpoint.
type deliveryPayload struct {
	UserID      string      `json:"user_id"`
	Origin      string      `json:"origin"`
	Destination string      `json:"destination,omitempty"`
	Job         models.Job  `json:"job"`
}

// Deliver sends one notification for a matched pending request. A non-2xx
// response is treated as a delivery failure; the caller keeps the pending
// record and retries on the next matching posting.
func (c *Client) Deliver(ctx context.Context, pn models.PendingNotification, job models.Job) error {
	body, err := json.Marshal(deliveryPayload{
		UserID:      pn.UserID,
		Origin:      pn.OriginAscii,
		Destination: pn.DestinationAscii,
		Job:         job,
	})
	if err != nil {
		return fmt.Errorf("notify: encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify: delivering: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notify: endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
