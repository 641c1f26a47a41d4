package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kargotakip/freightline/internal/config"
	"github.com/kargotakip/freightline/internal/jobstore"
	"github.com/kargotakip/freightline/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{KamyonetMaxWeightTons: 3.5, NeighborSuggestionLimit: 3}
}

func newTestController(convos ConversationStore, searcher JobSearcher, pending PendingNotifier, hinter Hinter) *Controller {
	return New(convos, searcher, pending, hinter, testConfig(), nil, zerolog.Nop())
}

func TestHandleTurn_GreetingFirstContact(t *testing.T) {
	convos := &fakeConvoStore{}
	c := newTestController(convos, newFakeSearcher(), &fakePendingNotifier{}, nil)
	reply, err := c.HandleTurn(context.Background(), "u1", "merhaba")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "kargo takip asistaniyim") {
		t.Fatalf("expected first-contact greeting, got %q", reply)
	}
}

func TestHandleTurn_GreetingSubsequent(t *testing.T) {
	convos := &fakeConvoStore{conv: models.Conversation{
		Messages: []models.ConversationMessage{{Role: models.RoleUser, Content: "istanbul ankara"}},
	}}
	c := newTestController(convos, newFakeSearcher(), &fakePendingNotifier{}, nil)
	reply, _ := c.HandleTurn(context.Background(), "u1", "selam")
	if strings.Contains(reply, "kargo takip asistaniyim") {
		t.Fatalf("expected subsequent greeting, not first-contact one: %q", reply)
	}
}

func TestHandleTurn_Profanity(t *testing.T) {
	c := newTestController(&fakeConvoStore{}, newFakeSearcher(), &fakePendingNotifier{}, nil)
	reply, _ := c.HandleTurn(context.Background(), "u1", "siktir git")
	if !strings.Contains(reply, "kibar") {
		t.Fatalf("expected polite-language reply, got %q", reply)
	}
}

func TestHandleTurn_Farewell(t *testing.T) {
	c := newTestController(&fakeConvoStore{}, newFakeSearcher(), &fakePendingNotifier{}, nil)
	reply, _ := c.HandleTurn(context.Background(), "u1", "hosca kal")
	if !strings.Contains(reply, "iyi yolculuklar") {
		t.Fatalf("expected farewell reply, got %q", reply)
	}
}

func TestHandleTurn_ContinuationPaginatesWhenMoreAvailable(t *testing.T) {
	convos := &fakeConvoStore{conv: models.Conversation{
		Context: models.ConversationContext{
			LastOrigin: "istanbul", LastDestination: "ankara",
			LastShownCount: 2, LastTotalCount: 5, LastOffset: 0,
		},
	}}
	searcher := newFakeSearcher(jobstore.SearchResult{Jobs: []models.Job{jobFixture("istanbul", "ankara")}, Total: 5})
	c := newTestController(convos, searcher, &fakePendingNotifier{}, nil)
	reply, _ := c.HandleTurn(context.Background(), "u1", "peki")
	if reply == "" {
		t.Fatal("expected a non-empty reply")
	}
	if len(searcher.calls) != 1 || searcher.calls[0].Offset != 2 {
		t.Fatalf("expected pagination search at offset 2, got calls=%v", searcher.calls)
	}
}

func TestHandleTurn_ContinuationNoMoreResults(t *testing.T) {
	convos := &fakeConvoStore{conv: models.Conversation{
		Context: models.ConversationContext{LastOrigin: "istanbul", LastShownCount: 5, LastTotalCount: 5},
	}}
	c := newTestController(convos, newFakeSearcher(), &fakePendingNotifier{}, nil)
	reply, _ := c.HandleTurn(context.Background(), "u1", "peki")
	if !strings.Contains(reply, "baska ilan yok") {
		t.Fatalf("expected no-more-results reply, got %q", reply)
	}
}

func TestHandleTurn_ContinuationWithoutOpenSearch(t *testing.T) {
	c := newTestController(&fakeConvoStore{}, newFakeSearcher(), &fakePendingNotifier{}, nil)
	reply, _ := c.HandleTurn(context.Background(), "u1", "peki")
	if !strings.Contains(reply, "hangi sehirden") {
		t.Fatalf("expected a route prompt, got %q", reply)
	}
}

func TestHandleTurn_PendingNearbyConfirmation(t *testing.T) {
	convos := &fakeConvoStore{conv: models.Conversation{
		Context: models.ConversationContext{
			LastOrigin: "istanbul", LastDestination: "ankara",
			PendingNearbySuggestion: "kocaeli",
		},
	}}
	searcher := newFakeSearcher(jobstore.SearchResult{Jobs: []models.Job{jobFixture("kocaeli", "ankara")}, Total: 1})
	c := newTestController(convos, searcher, &fakePendingNotifier{}, nil)
	reply, _ := c.HandleTurn(context.Background(), "u1", "evet")
	if !strings.Contains(reply, "kocaeli") {
		t.Fatalf("expected kocaeli in reply, got %q", reply)
	}
	if searcher.calls[0].Origin != "kocaeli" {
		t.Fatalf("expected search against kocaeli, got %+v", searcher.calls[0])
	}
}

func TestHandleTurn_PendingVehicleConfirmation(t *testing.T) {
	convos := &fakeConvoStore{conv: models.Conversation{
		Context: models.ConversationContext{
			LastOrigin: "istanbul", LastDestination: "ankara",
			PendingVehicleSuggestion: true, PreferredVehicle: models.VehicleKamyonet,
		},
	}}
	searcher := newFakeSearcher(jobstore.SearchResult{Jobs: []models.Job{jobFixture("istanbul", "ankara")}, Total: 1})
	c := newTestController(convos, searcher, &fakePendingNotifier{}, nil)
	_, _ = c.HandleTurn(context.Background(), "u1", "tamam")
	if searcher.calls[0].VehicleType != models.VehicleKamyonet {
		t.Fatalf("expected kamyonet filter applied, got %+v", searcher.calls[0])
	}
}

func TestHandleTurn_FAQJobPrice(t *testing.T) {
	c := newTestController(&fakeConvoStore{}, newFakeSearcher(), &fakePendingNotifier{}, nil)
	reply, _ := c.HandleTurn(context.Background(), "u1", "bu is icin navlun ne kadar")
	if !strings.Contains(reply, "ilan sahibiyle") {
		t.Fatalf("expected job-price FAQ reply, got %q", reply)
	}
}

func TestHandleTurn_PaginationRequiresOpenRoute(t *testing.T) {
	c := newTestController(&fakeConvoStore{}, newFakeSearcher(), &fakePendingNotifier{}, nil)
	reply, _ := c.HandleTurn(context.Background(), "u1", "devam")
	if !strings.Contains(reply, "once bir rota") {
		t.Fatalf("expected a route-required reply, got %q", reply)
	}
}

func TestHandleTurn_HerYereUsesPrecedingOrigin(t *testing.T) {
	searcher := newFakeSearcher(jobstore.SearchResult{Jobs: []models.Job{jobFixture("istanbul", "ankara")}, Total: 1})
	c := newTestController(&fakeConvoStore{}, searcher, &fakePendingNotifier{}, nil)
	_, _ = c.HandleTurn(context.Background(), "u1", "istanbuldan her yere yuk ariyorum")
	if searcher.calls[0].Origin != "istanbul" {
		t.Fatalf("expected origin istanbul, got %+v", searcher.calls[0])
	}
	if searcher.calls[0].Destination != "" {
		t.Fatalf("expected no destination filter for her yere search, got %+v", searcher.calls[0])
	}
}

func TestHandleTurn_NormalSearchNewRouteResetsFilters(t *testing.T) {
	convos := &fakeConvoStore{conv: models.Conversation{
		Context: models.ConversationContext{
			LastOrigin: "istanbul", LastDestination: "izmir",
			LastVehicleType: models.VehicleTIR, LastCargoType: "gida",
		},
	}}
	searcher := newFakeSearcher(jobstore.SearchResult{Jobs: []models.Job{jobFixture("ankara", "bursa")}, Total: 1})
	c := newTestController(convos, searcher, &fakePendingNotifier{}, nil)
	_, _ = c.HandleTurn(context.Background(), "u1", "ankara bursa arasi yuk ariyorum")
	if searcher.calls[0].Origin != "ankara" || searcher.calls[0].Destination != "bursa" {
		t.Fatalf("expected search for the new route, got %+v", searcher.calls[0])
	}
	if searcher.calls[0].VehicleType != "" {
		t.Fatalf("expected vehicle filter reset on a new route, got %q", searcher.calls[0].VehicleType)
	}
}

func TestHandleTurn_NormalSearchZeroResultsSuggestsNeighbor(t *testing.T) {
	convos := &fakeConvoStore{}
	searcher := newFakeSearcher(jobstore.SearchResult{Jobs: nil, Total: 0})
	c := newTestController(convos, searcher, &fakePendingNotifier{}, nil)
	reply, _ := c.HandleTurn(context.Background(), "u1", "istanbul ankara arasi tir ariyorum")
	if !strings.Contains(reply, "is bulamadim") {
		t.Fatalf("expected zero-result message, got %q", reply)
	}
	if !strings.Contains(reply, "yakin illerden") {
		t.Fatalf("expected a nearby-province suggestion, got %q", reply)
	}
}

func TestHandleTurn_PersistsBothUserAndAssistantTurns(t *testing.T) {
	convos := &fakeConvoStore{}
	c := newTestController(convos, newFakeSearcher(), &fakePendingNotifier{}, nil)
	_, _ = c.HandleTurn(context.Background(), "u1", "merhaba")
	if len(convos.patches) != 2 {
		t.Fatalf("expected 2 AddMessage calls (user + assistant), got %d", len(convos.patches))
	}
}
