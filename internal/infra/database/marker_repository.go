package database

import (
	"context"
	"database/sql"
)

type SyncMarkerRepository struct {
	DB *sql.DB
}

func NewSyncMarkerRepository(db *sql.DB) *SyncMarkerRepository {
	return &SyncMarkerRepository{DB: db}
}


// Upsert tags the namespace with its source and stamps the sync time.
func (r *SyncMarkerRepository) Upsert(ctx context.Context, namespace, source string) error {
	query := `
		INSERT INTO sync_markers (namespace, source, last_synced_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (namespace)
		DO UPDATE SET
			source = EXCLUDED.source,
			last_synced_at = NOW()
	`

	_, err := r.DB.ExecContext(ctx, query, namespace, source)
	return err
}
