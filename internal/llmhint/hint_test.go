package llmhint

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestClient_NoEndpointReturnsUnavailable(t *testing.T) {
	c, err := New("", time.Second, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = c.Classify(context.Background(), "ankaradan istanbula tir ariyorum")
	if err != ErrUnavailable {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestParseHint_ExtractsJSONObjectFromSurroundingText(t *testing.T) {
	hint, err := parseHint("sure, here it is: {\"intent\":\"search\",\"origin\":\"ankara\",\"destination\":\"izmir\"} thanks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hint.Origin != "ankara" || hint.Destination != "izmir" || hint.Intent != "search" {
		t.Fatalf("unexpected hint: %+v", hint)
	}
}

func TestParseHint_ErrorsOnNonJSON(t *testing.T) {
	if _, err := parseHint("no json here"); err == nil {
		t.Fatalf("expected an error for non-json content")
	}
}

func TestValidateAgainstUtterance_AcceptsMatchingPrefix(t *testing.T) {
	got := ValidateAgainstUtterance("Ankara", "ankaradan istanbula tir ariyorum")
	if got != "ankara" {
		t.Fatalf("expected ankara to validate, got %q", got)
	}
}

func TestValidateAgainstUtterance_RejectsHallucinatedCity(t *testing.T) {
	got := ValidateAgainstUtterance("Bursa", "ankaradan istanbula tir ariyorum")
	if got != "" {
		t.Fatalf("expected hallucinated city to be rejected, got %q", got)
	}
}

func TestValidateAgainstUtterance_EmptyFieldStaysEmpty(t *testing.T) {
	if got := ValidateAgainstUtterance("", "ankaradan istanbula"); got != "" {
		t.Fatalf("expected empty field to stay empty, got %q", got)
	}
}
