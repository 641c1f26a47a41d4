package ingest

import (
	"testing"
	"time"

	"github.com/kargotakip/freightline/internal/models"
)

func TestDetermineContact_PrefersParsedPhone(t *testing.T) {
	parsed := &models.ParsedMessage{
		Phones:      []models.Phone{{Original: "0532 111 22 33", Normalized: "5321112233"}},
		ContactName: "Mehmet",
	}
	phone, name := determineContact(parsed, "905551234567@s.whatsapp.net")
	if phone != "5321112233" {
		t.Fatalf("expected parsed phone, got %q", phone)
	}
	if name != "Mehmet" {
		t.Fatalf("expected contact name Mehmet, got %q", name)
	}
}

func TestDetermineContact_FallsBackToSenderJID(t *testing.T) {
	parsed := &models.ParsedMessage{}
	phone, _ := determineContact(parsed, "905551234567@s.whatsapp.net")
	if phone != "905551234567@s.whatsapp.net" {
		t.Fatalf("expected sender jid fallback, got %q", phone)
	}
}

func TestDetermineContact_EmptyWhenNothingAvailable(t *testing.T) {
	parsed := &models.ParsedMessage{}
	phone, _ := determineContact(parsed, "")
	if phone != "" {
		t.Fatalf("expected empty phone, got %q", phone)
	}
}

func TestMaterializeJobs_SingleRouteUsesPrimaryOriginDestination(t *testing.T) {
	qmsg := QueueMessage{MessageID: "m1", RemoteJID: "g1@g.us", SenderJID: "s1"}
	parsed := &models.ParsedMessage{
		Origin:      &models.LocationMention{OriginalText: "ankara", ProvinceName: "ankara", ProvinceCode: 6},
		Destination: &models.LocationMention{OriginalText: "istanbul", ProvinceName: "istanbul", ProvinceCode: 34},
	}
	jobs := materializeJobs(qmsg, parsed, "5321112233", "", time.Now())
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0].MessageID != "m1" {
		t.Fatalf("expected message id unchanged for single route, got %q", jobs[0].MessageID)
	}
	if jobs[0].OriginProvince != "ankara" || jobs[0].DestinationProvince != "istanbul" {
		t.Fatalf("unexpected origin/destination: %+v", jobs[0])
	}
	if jobs[0].RouteIndex != nil {
		t.Fatalf("expected no route index for a single-route job")
	}
}

func TestMaterializeJobs_MultiRouteExpandsPerRoute(t *testing.T) {
	qmsg := QueueMessage{MessageID: "m2", RemoteJID: "g1@g.us"}
	parsed := &models.ParsedMessage{
		Routes: []models.Route{
			{Origin: "ankara", Destination: "istanbul", OriginCode: 6, DestinationCode: 34},
			{Origin: "ankara", Destination: "izmir", OriginCode: 6, DestinationCode: 35},
		},
	}
	jobs := materializeJobs(qmsg, parsed, "5321112233", "", time.Now())
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].MessageID != "m2#route0" || jobs[1].MessageID != "m2#route1" {
		t.Fatalf("unexpected route message ids: %q %q", jobs[0].MessageID, jobs[1].MessageID)
	}
	if *jobs[0].TotalRoutes != 2 || *jobs[1].TotalRoutes != 2 {
		t.Fatalf("expected total_routes=2 on both jobs")
	}
	if *jobs[0].RouteIndex != 0 || *jobs[1].RouteIndex != 1 {
		t.Fatalf("unexpected route indices")
	}
}
