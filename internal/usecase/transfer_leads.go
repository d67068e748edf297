package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/leadboard/internal/csvio"
	"github.com/xavierca1/leadboard/internal/entity"
)


// LeadTransferUseCase covers the CSV paths: bulk import of uploaded
// files and export of the current lead list.
type LeadTransferUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}


func NewLeadTransferUseCase(leadRepo entity.LeadRepositoryInterface) *LeadTransferUseCase {
	return &LeadTransferUseCase{LeadRepo: leadRepo}
}


// Import parses the uploaded CSV, persists every row and returns the
// refreshed list. A malformed file rejects the whole upload; a partial
// persistence failure leaves the already-saved rows in place.
func (uc *LeadTransferUseCase) Import(ctx context.Context, session Session, csvText []byte) (*ImportOutput, error) {
	namespace, err := session.Namespace()
	if err != nil {
		return nil, err
	}

	leads, err := csvio.Parse(csvText)
	if err != nil {
		if errors.Is(err, csvio.ErrBadFormat) {
			return nil, NewFormatError(err.Error())
		}
		return nil, NewFormatError("could not read csv file: " + err.Error())
	}
	if len(leads) == 0 {
		return nil, NewFormatError("csv file has no data rows")
	}

	batch, err := uc.LeadRepo.CreateMany(ctx, namespace, leads)
	if err != nil {
		return nil, NewPersistError("failed to save imported leads", err)
	}
	if !batch.Ok() {
		// Some rows may already be in; they are not rolled back.
		return nil, NewPersistError("failed to save imported leads", nil)
	}

	stored, err := uc.LeadRepo.ListAll(ctx, namespace)
	if err != nil {
		return nil, NewPersistError("imported leads saved but reload failed", err)
	}

	stored = SortByCreatedTimeDesc(stored)
	log.Printf("📥 Import %s: %d leads imported (%d duplicates skipped)",
		namespace, batch.Created, batch.Duplicates)
	return &ImportOutput{
		Imported: batch.Created,
		Leads:    stored,
		KPIs:     entity.ComputeKPIs(stored),
	}, nil
}


// Export serializes every stored lead, newest first.
func (uc *LeadTransferUseCase) Export(ctx context.Context, session Session) ([]byte, error) {
	namespace, err := session.Namespace()
	if err != nil {
		return nil, err
	}

	leads, err := uc.LeadRepo.ListAll(ctx, namespace)
	if err != nil {
		return nil, NewPersistError("failed to read leads for export", err)
	}

	return csvio.Serialize(SortByCreatedTimeDesc(leads))
}
