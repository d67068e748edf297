package usecase

import (
	"context"

	"github.com/xavierca1/leadboard/internal/entity"
)

type SyncMarkerRepositoryInterface interface {
	Upsert(ctx context.Context, namespace, source string) error
}

type SheetFeedInterface interface {
	FetchLeads(ctx context.Context, sheetName string) ([]entity.Lead, error)
}

type SyncServiceInterface interface {
	Execute(ctx context.Context, session Session) (*SyncOutput, error)
}
