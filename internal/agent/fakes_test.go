package agent

import (
	"context"
	"errors"

	"github.com/kargotakip/freightline/internal/jobstore"
	"github.com/kargotakip/freightline/internal/llmhint"
	"github.com/kargotakip/freightline/internal/models"
)

// fakeSearcher returns queued results in call order, or errSearchFail if set.
type fakeSearcher struct {
	results   []jobstore.SearchResult
	calls     []jobstore.SearchParams
	errOnCall int // -1 disables
}

func newFakeSearcher(results ...jobstore.SearchResult) *fakeSearcher {
	return &fakeSearcher{results: results, errOnCall: -1}
}

func (f *fakeSearcher) Search(ctx context.Context, p jobstore.SearchParams) (jobstore.SearchResult, error) {
	idx := len(f.calls)
	f.calls = append(f.calls, p)
	if f.errOnCall == idx {
		return jobstore.SearchResult{}, errors.New("fake search failure")
	}
	if idx < len(f.results) {
		return f.results[idx], nil
	}
	if len(f.results) == 0 {
		return jobstore.SearchResult{}, nil
	}
	return f.results[len(f.results)-1], nil
}

type fakeConvoStore struct {
	conv      models.Conversation
	patches   []map[string]interface{}
	getErr    error
	addMsgErr error
}

func (f *fakeConvoStore) GetConversation(ctx context.Context, userID string) (models.Conversation, error) {
	if f.getErr != nil {
		return models.Conversation{}, f.getErr
	}
	return f.conv, nil
}

func (f *fakeConvoStore) AddMessage(ctx context.Context, userID string, msg models.ConversationMessage, patch map[string]interface{}) error {
	f.patches = append(f.patches, patch)
	return f.addMsgErr
}

type fakePendingNotifier struct {
	upserted []models.PendingNotification
}

func (f *fakePendingNotifier) UpsertPendingNotification(ctx context.Context, pn models.PendingNotification) error {
	f.upserted = append(f.upserted, pn)
	return nil
}

type fakeHinter struct {
	hint llmhint.Hint
	err  error
}

func (f *fakeHinter) Classify(ctx context.Context, utterance string) (llmhint.Hint, error) {
	return f.hint, f.err
}

func jobFixture(origin, destination string) models.Job {
	return models.Job{
		MessageID:           "m-" + origin + "-" + destination,
		OriginProvince:      origin,
		DestinationProvince: destination,
		VehicleType:         models.VehicleTIR,
		ContactPhone:        "5551112233",
	}
}
