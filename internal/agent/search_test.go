package agent

import (
	"context"
	"testing"

	"github.com/kargotakip/freightline/internal/jobstore"
	"github.com/kargotakip/freightline/internal/models"
)

func TestRunSearch_ParsiyelFallbackRetriesWithoutCargoFilter(t *testing.T) {
	searcher := newFakeSearcher(
		jobstore.SearchResult{},
		jobstore.SearchResult{Jobs: []models.Job{jobFixture("istanbul", "ankara")}, Total: 1},
	)
	params := jobstore.SearchParams{Origin: "istanbul", Destination: "ankara", CargoType: "parsiyel"}
	result, fellBack, err := runSearch(context.Background(), searcher, params, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fellBack {
		t.Fatal("expected parsiyel fallback to fire")
	}
	if len(result.Jobs) != 1 {
		t.Fatalf("expected 1 job from fallback, got %d", len(result.Jobs))
	}
	if len(searcher.calls) != 2 {
		t.Fatalf("expected 2 search calls, got %d", len(searcher.calls))
	}
	if searcher.calls[1].CargoType != "" {
		t.Fatal("expected fallback call to drop the cargo filter")
	}
}

func TestRunSearch_NoFallbackWhenResultsFound(t *testing.T) {
	searcher := newFakeSearcher(jobstore.SearchResult{Jobs: []models.Job{jobFixture("istanbul", "ankara")}, Total: 1})
	params := jobstore.SearchParams{Origin: "istanbul", Destination: "ankara", CargoType: "parsiyel"}
	_, fellBack, err := runSearch(context.Background(), searcher, params, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fellBack {
		t.Fatal("expected no fallback when the first search already found jobs")
	}
	if len(searcher.calls) != 1 {
		t.Fatalf("expected a single search call, got %d", len(searcher.calls))
	}
}

func TestRunSearch_SearchErrorWrapsAsToolFail(t *testing.T) {
	searcher := newFakeSearcher()
	searcher.errOnCall = 0
	_, _, err := runSearch(context.Background(), searcher, jobstore.SearchParams{Origin: "istanbul"}, "")
	if err != ErrAgentToolFail {
		t.Fatalf("expected ErrAgentToolFail, got %v", err)
	}
}

func TestFilterByIstanbulSide_NoOpWhenNeitherEndpointIsIstanbul(t *testing.T) {
	jobs := []models.Job{jobFixture("izmir", "bursa")}
	out := filterByIstanbulSide(jobs, "izmir", "bursa", models.IstanbulEuropean)
	if len(out) != 1 {
		t.Fatalf("expected no filtering, got %d jobs", len(out))
	}
}

func TestFilterByIstanbulSide_KeepsMatchingDistrictSide(t *testing.T) {
	jobs := []models.Job{
		{OriginProvince: "istanbul", OriginDistrict: "kadikoy", DestinationProvince: "ankara"},
		{OriginProvince: "istanbul", OriginDistrict: "besiktas", DestinationProvince: "ankara"},
	}
	out := filterByIstanbulSide(jobs, "istanbul", "ankara", models.IstanbulAsian)
	for _, j := range out {
		if j.OriginDistrict == "besiktas" {
			t.Fatal("expected besiktas (european side) to be filtered out")
		}
	}
}

func TestNeighborSuggestion_RespectsLimit(t *testing.T) {
	neighbors := neighborSuggestion("istanbul", 1)
	if len(neighbors) > 1 {
		t.Fatalf("expected at most 1 neighbor, got %d", len(neighbors))
	}
}

func TestNeighborSuggestion_EmptyOriginReturnsNil(t *testing.T) {
	if neighbors := neighborSuggestion("", 3); neighbors != nil {
		t.Fatalf("expected nil, got %v", neighbors)
	}
}

func TestApplyKamyonetCap_ClampsHighMaxWeight(t *testing.T) {
	params := jobstore.SearchParams{VehicleType: models.VehicleKamyonet, MaxWeight: 10}
	applyKamyonetCap(&params, 3.5)
	if params.MaxWeight != 3.5 {
		t.Fatalf("expected cap to clamp to 3.5, got %v", params.MaxWeight)
	}
}

func TestApplyKamyonetCap_LeavesOtherVehiclesAlone(t *testing.T) {
	params := jobstore.SearchParams{VehicleType: models.VehicleTIR, MaxWeight: 20}
	applyKamyonetCap(&params, 3.5)
	if params.MaxWeight != 20 {
		t.Fatalf("expected no change for non-kamyonet vehicle, got %v", params.MaxWeight)
	}
}
