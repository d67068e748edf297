package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/leadboard/internal/entity"
)


// DashboardUseCase orchestrates the initial load: read the store, pull
// the sheet feed, read again. Every failure inside the sequence lands
// at this boundary; it does not distinguish "sync failed" from
// "initial read failed" when classifying.
type DashboardUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	Sync     SyncServiceInterface
}


func NewDashboardUseCase(leadRepo entity.LeadRepositoryInterface, sync SyncServiceInterface) *DashboardUseCase {
	return &DashboardUseCase{LeadRepo: leadRepo, Sync: sync}
}


const warnNoLeads = "no leads available for this account"


func (uc *DashboardUseCase) Load(ctx context.Context, session Session) (*DashboardOutput, error) {
	namespace, err := session.Namespace()
	if err != nil {
		return nil, err
	}

	leads, err := uc.LeadRepo.ListAll(ctx, namespace)
	if err != nil {
		return uc.classify(err)
	}

	syncOut, err := uc.Sync.Execute(ctx, session)
	if err != nil {
		return uc.classify(err)
	}

	// Replace the pre-sync list with the post-sync state.
	if syncOut.Added > 0 {
		leads, err = uc.LeadRepo.ListAll(ctx, namespace)
		if err != nil {
			return uc.classify(err)
		}
	}

	leads = SortByCreatedTimeDesc(leads)
	return &DashboardOutput{
		Leads:         leads,
		KPIs:          entity.ComputeKPIs(leads),
		NewLeadsAdded: syncOut.Added,
	}, nil
}


// classify turns a load-sequence failure into either the soft
// "empty account" state or a hard load error. A 500-class status from
// any dependency is read as "this account has no data yet" — the
// heuristic is approximate and can hide a genuine server fault, which
// is why the underlying error is still logged.
func (uc *DashboardUseCase) classify(err error) (*DashboardOutput, error) {
	if de, ok := err.(*DomainError); ok && de.Code == CodeAuthRequired {
		return nil, err
	}
	if isServerError(err) {
		log.Printf("⚠️ Dashboard load: treating upstream failure as empty account: %v", err)
		return &DashboardOutput{
			Leads:   []entity.Lead{},
			KPIs:    entity.ComputeKPIs(nil),
			Warning: warnNoLeads,
		}, nil
	}
	return nil, &TechnicalError{Code: CodeLoad, Message: "failed to load leads: " + err.Error(), Cause: err}
}


type statusCoder interface {
	StatusCode() int
}

func isServerError(err error) bool {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode() >= 500
	}
	return false
}
