// Package llmhint wraps an optional LLM call that gives the agent
// controller (C7) a fuzzy intent/location guess when the deterministic
// handler chain can't decide on its own. The caller treats every field
// this package returns as untrusted advice, never as ground truth (spec
// §4.7, §9 "LLM in the control path").
package llmhint

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/kargotakip/freightline/internal/normalize"
)

// Hint is the structured, untrusted guess the LLM returns. The controller
// only ever reads these fields; it never renders anything the model wrote
// as free text.
type Hint struct {
	Intent      string `json:"intent,omitempty"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	VehicleType string `json:"vehicle_type,omitempty"`
	CargoType   string `json:"cargo_type,omitempty"`
}

// retryConfig mirrors the teacher's exponential-backoff shape
// (internal/tools/llm_retry.go), scaled down to the soft 3s budget spec §5
// gives the agent's LLM suspension point.
type retryConfig struct {
	maxRetries    int
	initialDelay  time.Duration
	maxDelay      time.Duration
	backoffFactor float64
}

func defaultRetryConfig() retryConfig {
	return retryConfig{maxRetries: 2, initialDelay: 200 * time.Millisecond, maxDelay: 1 * time.Second, backoffFactor: 2.0}
}

// Client calls an OpenAI-compatible chat model to classify one driver
// utterance.
type Client struct {
	llm     llms.Model
	timeout time.Duration
	retry   retryConfig
	log     zerolog.Logger
}

// New builds a Client against endpoint (an OpenAI-compatible base URL).
// A zero-value endpoint is allowed: Classify then always returns
// ErrUnavailable and the controller proceeds rule-based only.
func New(endpoint string, timeout time.Duration, logger zerolog.Logger) (*Client, error) {
	if endpoint == "" {
		return &Client{timeout: timeout, log: logger, retry: defaultRetryConfig()}, nil
	}
	llm, err := openai.New(openai.WithBaseURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("llmhint: building client: %w", err)
	}
	return &Client{llm: llm, timeout: timeout, log: logger, retry: defaultRetryConfig()}, nil
}

// ErrUnavailable means no LLM endpoint is configured or every retry timed
// out; callers fall back to the rule-based path.
var ErrUnavailable = fmt.Errorf("llmhint: unavailable")

const systemPrompt = `You classify one Turkish trucking-chat message. Reply with strict JSON only,
no prose: {"intent":"search|faq|other","origin":"<province or empty>","destination":"<province or empty>","vehicle_type":"<TIR|KAMYON|KAMYONET|DORSE|... or empty>","cargo_type":"<or empty>"}.
Use lowercase ascii Turkish province names. Never invent a city that is not present in the message.`

// Classify asks the LLM for a Hint, honoring the configured soft timeout
// and retrying transient failures with backoff. On any unresolved failure
// it returns ErrUnavailable rather than propagating the underlying error,
// since an LLM miss must never fail the conversation (spec §7 AgentLLMTimeout).
func (c *Client) Classify(ctx context.Context, utterance string) (Hint, error) {
	if c.llm == nil {
		return Hint{}, ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		{Role: llms.ChatMessageTypeSystem, Parts: []llms.ContentPart{llms.TextPart(systemPrompt)}},
		{Role: llms.ChatMessageTypeHuman, Parts: []llms.ContentPart{llms.TextPart(utterance)}},
	}

	delay := c.retry.initialDelay
	var lastErr error
	for attempt := 0; attempt <= c.retry.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return Hint{}, ErrUnavailable
		default:
		}

		resp, err := c.llm.GenerateContent(ctx, messages)
		if err == nil && len(resp.Choices) > 0 {
			hint, parseErr := parseHint(resp.Choices[0].Content)
			if parseErr == nil {
				return hint, nil
			}
			lastErr = parseErr
		} else {
			lastErr = err
		}

		if attempt >= c.retry.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return Hint{}, ErrUnavailable
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * c.retry.backoffFactor)
		if delay > c.retry.maxDelay {
			delay = c.retry.maxDelay
		}
	}

	c.log.Debug().Err(lastErr).Msg("llmhint: classify failed after retries, falling back to rule-based path")
	return Hint{}, ErrUnavailable
}

func parseHint(content string) (Hint, error) {
	content = strings.TrimSpace(content)
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return Hint{}, fmt.Errorf("llmhint: no json object in response")
	}
	var hint Hint
	if err := json.Unmarshal([]byte(content[start:end+1]), &hint); err != nil {
		return Hint{}, fmt.Errorf("llmhint: decoding response: %w", err)
	}
	return hint, nil
}

// ValidateAgainstUtterance implements the anti-hallucination guard from
// spec §4.7: a location field is discarded unless its first four
// (ascii-folded) characters appear in the user's normalized utterance.
func ValidateAgainstUtterance(field, normalizedUtterance string) string {
	field = normalize.ToASCII(strings.TrimSpace(field))
	if field == "" {
		return ""
	}
	prefixLen := 4
	if len(field) < prefixLen {
		prefixLen = len(field)
	}
	if !strings.Contains(normalizedUtterance, field[:prefixLen]) {
		return ""
	}
	return field
}
