package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/usecase"
)

func feedLead(number, createdTime string) entity.Lead {
	return entity.Lead{
		CreatedTime:    createdTime,
		Platform:       "fb",
		Name:           "Lead " + number,
		WhatsappNumber: number,
		LeadStatus:     entity.StatusNewLead,
	}
}

// TestSyncCreatesOnlyUnseenLeads - created leads = incoming minus stored natural keys
func TestSyncCreatesOnlyUnseenLeads(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	markerRepo := new(MockMarkerRepository)
	feed := new(MockSheetFeed)

	stored := []entity.Lead{
		feedLead("919876543210", "2024-01-01T00:00:00Z"),
	}
	incoming := []entity.Lead{
		feedLead("919876543210", "2024-01-01T00:00:00Z"), // duplicate of stored
		feedLead("919876543211", "2024-01-02T00:00:00Z"), // new
		feedLead("919876543212", "2024-01-03T00:00:00Z"), // new
	}

	markerRepo.On("Upsert", mock.Anything, "9876543210", "sheet").Return(nil)
	feed.On("FetchLeads", mock.Anything, "9876543210").Return(incoming, nil)
	leadRepo.On("ListAll", mock.Anything, "9876543210").Return(stored, nil)
	leadRepo.On("CreateMany", mock.Anything, "9876543210", mock.MatchedBy(func(leads []entity.Lead) bool {
		return len(leads) == 2 &&
			leads[0].WhatsappNumber == "919876543211" &&
			leads[1].WhatsappNumber == "919876543212"
	})).Return(&entity.BatchResult{Created: 2}, nil)

	uc := usecase.NewSyncLeadsUseCase(leadRepo, markerRepo, feed)
	out, err := uc.Execute(context.Background(), usecase.Session{Phone: "+91 98765-43210"})

	assert.NoError(t, err)
	assert.Equal(t, "9876543210", out.Namespace)
	assert.Equal(t, 3, out.FeedTotal)
	assert.Equal(t, 2, out.Added)
	assert.Equal(t, 1, out.Duplicates)
	markerRepo.AssertExpectations(t)
	leadRepo.AssertExpectations(t)
}

// TestSyncSecondRunAddsNothing - unchanged feed means zero new leads, and zero is not an error
func TestSyncSecondRunAddsNothing(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	markerRepo := new(MockMarkerRepository)
	feed := new(MockSheetFeed)

	incoming := []entity.Lead{
		feedLead("919876543211", "2024-01-02T00:00:00Z"),
	}

	markerRepo.On("Upsert", mock.Anything, "9876543211", "sheet").Return(nil)
	feed.On("FetchLeads", mock.Anything, "9876543211").Return(incoming, nil)

	// First run: store empty.
	leadRepo.On("ListAll", mock.Anything, "9876543211").Return([]entity.Lead{}, nil).Once()
	leadRepo.On("CreateMany", mock.Anything, "9876543211", mock.Anything).
		Return(&entity.BatchResult{Created: 1}, nil).Once()

	uc := usecase.NewSyncLeadsUseCase(leadRepo, markerRepo, feed)
	session := usecase.Session{Phone: "919876543211"}

	out, err := uc.Execute(context.Background(), session)
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Added)

	// Second run: the same lead is stored now; CreateMany must not be called again.
	leadRepo.On("ListAll", mock.Anything, "9876543211").Return(incoming, nil).Once()

	out, err = uc.Execute(context.Background(), session)
	assert.NoError(t, err)
	assert.Equal(t, 0, out.Added)
	assert.Equal(t, 1, out.Duplicates)
	leadRepo.AssertExpectations(t)
}

// TestSyncDedupesInsideTheFeedBatch - the feed repeating a row only creates it once
func TestSyncDedupesInsideTheFeedBatch(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	markerRepo := new(MockMarkerRepository)
	feed := new(MockSheetFeed)

	repeated := feedLead("919876543213", "2024-02-01T00:00:00Z")
	incoming := []entity.Lead{repeated, repeated}

	markerRepo.On("Upsert", mock.Anything, mock.Anything, "sheet").Return(nil)
	feed.On("FetchLeads", mock.Anything, mock.Anything).Return(incoming, nil)
	leadRepo.On("ListAll", mock.Anything, mock.Anything).Return([]entity.Lead{}, nil)
	leadRepo.On("CreateMany", mock.Anything, mock.Anything, mock.MatchedBy(func(leads []entity.Lead) bool {
		return len(leads) == 1
	})).Return(&entity.BatchResult{Created: 1}, nil)

	uc := usecase.NewSyncLeadsUseCase(leadRepo, markerRepo, feed)
	out, err := uc.Execute(context.Background(), usecase.Session{Phone: "919876543213"})

	assert.NoError(t, err)
	assert.Equal(t, 1, out.Added)
	assert.Equal(t, 1, out.Duplicates)
}

// TestSyncRequiresSessionPhone
func TestSyncRequiresSessionPhone(t *testing.T) {
	uc := usecase.NewSyncLeadsUseCase(new(MockLeadRepository), new(MockMarkerRepository), new(MockSheetFeed))

	_, err := uc.Execute(context.Background(), usecase.Session{Phone: "no digits here"})

	assert.Error(t, err)
	assert.Equal(t, usecase.CodeAuthRequired, usecase.ErrorCode(err))
}

// TestSyncFeedFailureBecomesSyncError
func TestSyncFeedFailureBecomesSyncError(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	markerRepo := new(MockMarkerRepository)
	feed := new(MockSheetFeed)

	markerRepo.On("Upsert", mock.Anything, mock.Anything, "sheet").Return(nil)
	feed.On("FetchLeads", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	leadRepo.On("ListAll", mock.Anything, mock.Anything).Return([]entity.Lead{}, nil)

	uc := usecase.NewSyncLeadsUseCase(leadRepo, markerRepo, feed)
	_, err := uc.Execute(context.Background(), usecase.Session{Phone: "919876543210"})

	assert.Error(t, err)
	assert.Equal(t, usecase.CodeSync, usecase.ErrorCode(err))
}

// TestSyncPartialBatchFailureKeepsCounts - what was created stays created
func TestSyncPartialBatchFailureKeepsCounts(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	markerRepo := new(MockMarkerRepository)
	feed := new(MockSheetFeed)

	incoming := []entity.Lead{
		feedLead("919876543214", "2024-03-01T00:00:00Z"),
		feedLead("919876543215", "2024-03-02T00:00:00Z"),
	}

	markerRepo.On("Upsert", mock.Anything, mock.Anything, "sheet").Return(nil)
	feed.On("FetchLeads", mock.Anything, mock.Anything).Return(incoming, nil)
	leadRepo.On("ListAll", mock.Anything, mock.Anything).Return([]entity.Lead{}, nil)
	leadRepo.On("CreateMany", mock.Anything, mock.Anything, mock.Anything).Return(&entity.BatchResult{
		Created: 1,
		Failed:  []entity.BatchFailure{{Index: 1, Reason: "boom"}},
	}, nil)

	uc := usecase.NewSyncLeadsUseCase(leadRepo, markerRepo, feed)
	out, err := uc.Execute(context.Background(), usecase.Session{Phone: "919876543214"})

	assert.Error(t, err)
	assert.Equal(t, usecase.CodeSync, usecase.ErrorCode(err))
	assert.Equal(t, 1, out.Added)
}
