package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/xavierca1/leadboard/internal/entity"
)


// SyncLeadsUseCase pulls leads from the external sheet feed into the
// store for one namespace, skipping every lead whose natural key
// (whatsapp_number_ + created_time) is already present. Existing leads
// are never mutated, even when the feed carries different field values.
type SyncLeadsUseCase struct {
	LeadRepo   entity.LeadRepositoryInterface
	MarkerRepo SyncMarkerRepositoryInterface
	Feed       SheetFeedInterface
}


func NewSyncLeadsUseCase(
	leadRepo entity.LeadRepositoryInterface,
	markerRepo SyncMarkerRepositoryInterface,
	feed SheetFeedInterface,
) *SyncLeadsUseCase {
	return &SyncLeadsUseCase{
		LeadRepo:   leadRepo,
		MarkerRepo: markerRepo,
		Feed:       feed,
	}
}


func (uc *SyncLeadsUseCase) Execute(ctx context.Context, session Session) (*SyncOutput, error) {
	namespace, err := session.Namespace()
	if err != nil {
		return nil, err
	}

	// Marker first: even a sync that finds nothing stamps lastSyncedAt.
	// If a later step fails the marker write is not rolled back.
	if err := uc.MarkerRepo.Upsert(ctx, namespace, "sheet"); err != nil {
		return nil, NewSyncError("failed to stamp sync marker: "+err.Error(), err)
	}

	// Feed fetch and store read are independent; issue both and join.
	var (
		incoming []entity.Lead
		stored   []entity.Lead
		feedErr  error
		listErr  error
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		incoming, feedErr = uc.Feed.FetchLeads(ctx, namespace)
	}()
	go func() {
		defer wg.Done()
		stored, listErr = uc.LeadRepo.ListAll(ctx, namespace)
	}()
	wg.Wait()

	if feedErr != nil {
		return nil, NewSyncError("sheet feed fetch failed: "+feedErr.Error(), feedErr)
	}
	if listErr != nil {
		return nil, NewSyncError("lead store read failed: "+listErr.Error(), listErr)
	}

	seen := make(map[string]bool, len(stored))
	for i := range stored {
		seen[stored[i].NaturalKey()] = true
	}

	fresh := make([]entity.Lead, 0, len(incoming))
	for i := range incoming {
		key := incoming[i].NaturalKey()
		if seen[key] {
			continue
		}
		seen[key] = true // dedup inside the batch too
		fresh = append(fresh, incoming[i])
	}

	out := &SyncOutput{
		Namespace:  namespace,
		FeedTotal:  len(incoming),
		Duplicates: len(incoming) - len(fresh),
	}

	if len(fresh) == 0 {
		log.Printf("🔄 Sync %s: feed returned %d leads, nothing new", namespace, len(incoming))
		return out, nil
	}

	batch, err := uc.LeadRepo.CreateMany(ctx, namespace, fresh)
	if err != nil {
		return nil, NewSyncError("lead store write failed: "+err.Error(), err)
	}

	out.Added = batch.Created
	out.Duplicates += batch.Duplicates

	if !batch.Ok() {
		// Whatever was created stays created.
		return out, NewSyncError(
			fmt.Sprintf("%d of %d new leads failed to save", len(batch.Failed), len(fresh)), nil)
	}

	log.Printf("🔄 Sync %s: %d new leads added (%d in feed, %d already known)",
		namespace, out.Added, out.FeedTotal, out.Duplicates)
	return out, nil
}
