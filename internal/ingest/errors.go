package ingest

import "errors"

// Error kinds from spec §7. These are sentinel values, not a type
// hierarchy: callers compare with errors.Is, and most of them carry no
// side effects beyond the HTTP status / log line the comment describes.
var (
	// ErrAuthFail: admission header secret missing or mismatched. 401, no side effects.
	ErrAuthFail = errors.New("ingest: authentication failed")

	// ErrValidationFail: malformed JSON or missing required fields. 400, no side effects.
	ErrValidationFail = errors.New("ingest: validation failed")

	// ErrFilterDrop: own message, non-group chat, or empty text. 200, no side effects, logged.
	ErrFilterDrop = errors.New("ingest: message filtered out")

	// ErrArchiveFail: object archive write failed. 500, caller retries.
	ErrArchiveFail = errors.New("ingest: archive write failed")

	// ErrQueueFail: enqueue failed after a successful archive write. 500.
	ErrQueueFail = errors.New("ingest: queue send failed")

	// ErrParseFail: consumer-side parse error. Record-level retry, then dead-letter.
	ErrParseFail = errors.New("ingest: parse failed")

	// ErrGateSkip: confidence too low or no contact phone. No job row, RawMessage still marked processed.
	ErrGateSkip = errors.New("ingest: materialization gate skipped")

	// ErrDuplicateMessage: messageId already processed. No-op success.
	ErrDuplicateMessage = errors.New("ingest: duplicate message")

	// ErrNotificationDeliveryFail: outbound delivery failed. Logged, pending record kept.
	ErrNotificationDeliveryFail = errors.New("ingest: notification delivery failed")
)
