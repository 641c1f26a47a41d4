// Package config loads the process configuration from environment
// variables, following the same env-driven pattern the teacher module uses
// for its network table (models.LoadNetworksFromEnv): read everything at
// startup into a typed struct, fall back to sane defaults, never re-read
// later.
package config

import (
	"crypto/subtle"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config is the full set of §6.5 environment variables plus the two
// Open-Question tunables from spec.md §9, exposed so they can be changed
// without a code edit.
type Config struct {
	WebhookSecret     string
	WebhookSecretHash string // optional bcrypt hash; when set, takes priority over WebhookSecret

	MessageQueueURL     string
	ArchiveBucket       string
	DatabaseURL         string
	ConversationsTable  string
	LLMEndpoint         string
	OutboundDeliveryURL string

	// KamyonetMaxWeightTons is the spec §9 Open Question: whether the
	// 3.5 ton kamyonet cap is a hard product requirement or a safeguard.
	// Kept as documented behavior but exposed as a tunable.
	KamyonetMaxWeightTons float64

	// NeighborSuggestionLimit bounds how many neighbor provinces the agent
	// offers after a zero-result search (spec §9: "limit is 3 in the
	// source but not justified; parameterize").
	NeighborSuggestionLimit int

	// JobRetention is how long a Job stays active after PostedAt, driving
	// the retention sweep (SPEC_FULL "Supplemented features").
	JobRetention time.Duration

	// Timeouts, one per spec §5 suspension point.
	ArchiveTimeout  time.Duration
	QueueTimeout    time.Duration
	DBTimeout       time.Duration
	DeliveryTimeout time.Duration
	LLMTimeout      time.Duration
}

// Load reads Config from the process environment, applying defaults for
// anything unset. Required fields (webhook secret, database URL) are left
// empty if absent — callers decide whether that is fatal.
func Load() *Config {
	cfg := &Config{
		WebhookSecret:           os.Getenv("WEBHOOK_SECRET"),
		WebhookSecretHash:       os.Getenv("WEBHOOK_SECRET_HASH"),
		MessageQueueURL:         os.Getenv("MESSAGE_QUEUE_URL"),
		ArchiveBucket:           os.Getenv("ARCHIVE_BUCKET"),
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		ConversationsTable:      getEnvDefault("CONVERSATIONS_TABLE", "conversations"),
		LLMEndpoint:             os.Getenv("LLM_ENDPOINT"),
		OutboundDeliveryURL:     os.Getenv("OUTBOUND_DELIVERY_URL"),
		KamyonetMaxWeightTons:   getEnvFloatDefault("KAMYONET_MAX_WEIGHT_TONS", 3.5),
		NeighborSuggestionLimit: getEnvIntDefault("NEIGHBOR_SUGGESTION_LIMIT", 3),
		JobRetention:            getEnvDurationDefault("JOB_RETENTION", 72*time.Hour),
		ArchiveTimeout:          getEnvDurationDefault("ARCHIVE_TIMEOUT", 5*time.Second),
		QueueTimeout:            getEnvDurationDefault("QUEUE_TIMEOUT", 5*time.Second),
		DBTimeout:               getEnvDurationDefault("DB_TIMEOUT", 5*time.Second),
		DeliveryTimeout:         getEnvDurationDefault("DELIVERY_TIMEOUT", 10*time.Second),
		LLMTimeout:              getEnvDurationDefault("LLM_TIMEOUT", 3*time.Second),
	}
	return cfg
}

// VerifyWebhookSecret authenticates an inbound `x-api-key` header value.
// When WebhookSecretHash is configured it is checked with bcrypt (the
// secret can then be rotated without redeploying a plaintext value);
// otherwise it falls back to a constant-time comparison against
// WebhookSecret, per spec §6.1.
func (c *Config) VerifyWebhookSecret(candidate string) bool {
	if candidate == "" {
		return false
	}
	if c.WebhookSecretHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.WebhookSecretHash), []byte(candidate)) == nil
	}
	if c.WebhookSecret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.WebhookSecret), []byte(candidate)) == 1
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvIntDefault(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloatDefault(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDurationDefault(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// ValidateForIngestion reports a descriptive error for configuration that
// is missing and required for ingestion to operate; cmd/main.go treats
// such an error as fatal at startup. Optional settings such as
// LLM_ENDPOINT are not checked here.
func (c *Config) ValidateForIngestion() error {
	var missing []string
	if c.WebhookSecret == "" && c.WebhookSecretHash == "" {
		missing = append(missing, "WEBHOOK_SECRET or WEBHOOK_SECRET_HASH")
	}
	if c.MessageQueueURL == "" {
		missing = append(missing, "MESSAGE_QUEUE_URL")
	}
	if c.ArchiveBucket == "" {
		missing = append(missing, "ARCHIVE_BUCKET")
	}
	if c.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v", missing)
	}
	return nil
}
