package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/usecase"
)

type fakeStatusError struct {
	code int
}

func (e *fakeStatusError) Error() string {
	return fmt.Sprintf("upstream status %d", e.code)
}

func (e *fakeStatusError) StatusCode() int {
	return e.code
}

// TestDashboardLoadHappyPath - read, sync, re-read, KPIs over the final list
func TestDashboardLoadHappyPath(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	sync := new(MockSyncService)

	before := []entity.Lead{
		{ID: "a", CreatedTime: "2024-01-01T00:00:00Z", LeadStatus: entity.StatusNewLead},
	}
	after := []entity.Lead{
		{ID: "a", CreatedTime: "2024-01-01T00:00:00Z", LeadStatus: entity.StatusNewLead},
		{ID: "b", CreatedTime: "2024-01-02T00:00:00Z", LeadStatus: entity.StatusMeetingDone},
	}

	leadRepo.On("ListAll", mock.Anything, "9876543210").Return(before, nil).Once()
	sync.On("Execute", mock.Anything, mock.Anything).Return(&usecase.SyncOutput{Added: 1}, nil)
	leadRepo.On("ListAll", mock.Anything, "9876543210").Return(after, nil).Once()

	uc := usecase.NewDashboardUseCase(leadRepo, sync)
	out, err := uc.Load(context.Background(), usecase.Session{Phone: "919876543210"})

	assert.NoError(t, err)
	assert.Len(t, out.Leads, 2)
	// Newest first.
	assert.Equal(t, "b", out.Leads[0].ID)
	assert.Equal(t, 1, out.NewLeadsAdded)
	assert.Empty(t, out.Warning)

	// KPI counts over the post-sync list.
	kpis := map[string]int{}
	for _, k := range out.KPIs {
		kpis[k.Label] = k.Count
	}
	assert.Equal(t, 2, kpis["Total Leads"])
	assert.Equal(t, 1, kpis["Meeting Done"])
	assert.Equal(t, 0, kpis["Deal Done"])
	leadRepo.AssertExpectations(t)
}

// TestDashboardLoadNoResyncListWhenNothingAdded
func TestDashboardLoadNoResyncListWhenNothingAdded(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	sync := new(MockSyncService)

	leadRepo.On("ListAll", mock.Anything, mock.Anything).
		Return([]entity.Lead{{ID: "a", CreatedTime: "2024-01-01T00:00:00Z"}}, nil).Once()
	sync.On("Execute", mock.Anything, mock.Anything).Return(&usecase.SyncOutput{Added: 0}, nil)

	uc := usecase.NewDashboardUseCase(leadRepo, sync)
	out, err := uc.Load(context.Background(), usecase.Session{Phone: "919876543210"})

	assert.NoError(t, err)
	assert.Len(t, out.Leads, 1)
	leadRepo.AssertExpectations(t) // a second ListAll would fail the .Once() contract
}

// TestDashboardServerErrorBecomesEmptyAccountState - the 500 heuristic
func TestDashboardServerErrorBecomesEmptyAccountState(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	sync := new(MockSyncService)

	leadRepo.On("ListAll", mock.Anything, mock.Anything).Return([]entity.Lead{}, nil)
	sync.On("Execute", mock.Anything, mock.Anything).
		Return(nil, usecase.NewSyncError("feed blew up", &fakeStatusError{code: 500}))

	uc := usecase.NewDashboardUseCase(leadRepo, sync)
	out, err := uc.Load(context.Background(), usecase.Session{Phone: "919876543210"})

	assert.NoError(t, err)
	assert.Empty(t, out.Leads)
	assert.NotEmpty(t, out.Warning)
}

// TestDashboardOtherFailuresAreLoadErrors
func TestDashboardOtherFailuresAreLoadErrors(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	sync := new(MockSyncService)

	leadRepo.On("ListAll", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	uc := usecase.NewDashboardUseCase(leadRepo, sync)
	_, err := uc.Load(context.Background(), usecase.Session{Phone: "919876543210"})

	assert.Error(t, err)
	assert.Equal(t, usecase.CodeLoad, usecase.ErrorCode(err))
}

// TestDashboardSyncFailureClassifiedLikeReadFailure - same boundary, same rules
func TestDashboardSyncFailureClassifiedLikeReadFailure(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	sync := new(MockSyncService)

	leadRepo.On("ListAll", mock.Anything, mock.Anything).Return([]entity.Lead{}, nil)
	sync.On("Execute", mock.Anything, mock.Anything).
		Return(nil, usecase.NewSyncError("network sneeze", errors.New("timeout")))

	uc := usecase.NewDashboardUseCase(leadRepo, sync)
	_, err := uc.Load(context.Background(), usecase.Session{Phone: "919876543210"})

	assert.Error(t, err)
	assert.Equal(t, usecase.CodeLoad, usecase.ErrorCode(err))
}

// TestDashboardAuthErrorPassesThrough
func TestDashboardAuthErrorPassesThrough(t *testing.T) {
	uc := usecase.NewDashboardUseCase(new(MockLeadRepository), new(MockSyncService))

	_, err := uc.Load(context.Background(), usecase.Session{})

	assert.Error(t, err)
	assert.Equal(t, usecase.CodeAuthRequired, usecase.ErrorCode(err))
}
