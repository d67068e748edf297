package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // Postgres driver
)

// NewDBConnection opens the pool and proves it with a ping.
func NewDBConnection(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db); err != nil {
		return nil, err
	}

	return db, nil
}


// ensureSchema bootstraps the two tables on first run. The uniqueness
// constraint on the natural key is what keeps two concurrent syncs of
// the same namespace from creating the same lead twice.
func ensureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS leads (
			id TEXT PRIMARY KEY,
			namespace TEXT NOT NULL,
			created_time TEXT NOT NULL DEFAULT '',
			platform TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL DEFAULT '',
			whatsapp_number TEXT NOT NULL DEFAULT '',
			lead_status TEXT NOT NULL DEFAULT 'New Lead',
			comments TEXT NOT NULL DEFAULT '',
			customer_comment TEXT NOT NULL DEFAULT '',
			follow_up_date TEXT NOT NULL DEFAULT '',
			follow_up_time TEXT NOT NULL DEFAULT '',
			reminder_sent BOOLEAN NOT NULL DEFAULT false,
			UNIQUE (namespace, whatsapp_number, created_time)
		)`,
		`CREATE INDEX IF NOT EXISTS leads_namespace_idx ON leads (namespace)`,
		`CREATE TABLE IF NOT EXISTS sync_markers (
			namespace TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			last_synced_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
