package telemetry

import (
	"context"
	"errors"
	"testing"
)

func TestStageTracer_Stage_RunsFnAndPropagatesResult(t *testing.T) {
	st := NewStageTracer(nil, "ingest", false)

	ranWith := false
	err := st.Stage(context.Background(), "parse", nil, func(ctx context.Context) error {
		ranWith = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ranWith {
		t.Fatal("expected fn to run")
	}
}

func TestStageTracer_Stage_PropagatesError(t *testing.T) {
	st := NewStageTracer(nil, "ingest", true)
	wantErr := errors.New("boom")

	err := st.Stage(context.Background(), "materialize", nil, func(ctx context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
