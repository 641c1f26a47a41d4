package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kargotakip/freightline/internal/models"
)

func TestDeliver_SuccessOnOKResponse(t *testing.T) {
	var got deliveryPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL)
	pn := models.PendingNotification{UserID: "driver-1", OriginAscii: "ankara", DestinationAscii: "izmir"}
	job := models.Job{MessageID: "m1", PostedAt: time.Now()}

	if err := client.Deliver(context.Background(), pn, job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserID != "driver-1" || got.Origin != "ankara" {
		t.Fatalf("unexpected payload received: %+v", got)
	}
}

func TestDeliver_ErrorOnNon2xxResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL)
	pn := models.PendingNotification{UserID: "driver-2", OriginAscii: "bursa"}
	job := models.Job{MessageID: "m2"}

	if err := client.Deliver(context.Background(), pn, job); err == nil {
		t.Fatalf("expected error on 500 response")
	}
}
