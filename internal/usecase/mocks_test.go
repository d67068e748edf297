package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) ListAll(ctx context.Context, namespace string) ([]entity.Lead, error) {
	args := m.Called(ctx, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) CreateMany(ctx context.Context, namespace string, leads []entity.Lead) (*entity.BatchResult, error) {
	args := m.Called(ctx, namespace, leads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BatchResult), args.Error(1)
}

func (m *MockLeadRepository) UpdatePartial(ctx context.Context, namespace, id string, fields map[string]string) error {
	args := m.Called(ctx, namespace, id, fields)
	return args.Error(0)
}

// MockMarkerRepository
type MockMarkerRepository struct {
	mock.Mock
}

func (m *MockMarkerRepository) Upsert(ctx context.Context, namespace, source string) error {
	args := m.Called(ctx, namespace, source)
	return args.Error(0)
}

// MockSheetFeed
type MockSheetFeed struct {
	mock.Mock
}

func (m *MockSheetFeed) FetchLeads(ctx context.Context, sheetName string) ([]entity.Lead, error) {
	args := m.Called(ctx, sheetName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

// MockSyncService
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Execute(ctx context.Context, session usecase.Session) (*usecase.SyncOutput, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SyncOutput), args.Error(1)
}
