package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/xavierca1/leadboard/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}


func (r *LeadRepository) ListAll(ctx context.Context, namespace string) ([]entity.Lead, error) {
	query := `
		SELECT id, created_time, platform, name, whatsapp_number,
		       lead_status, comments, customer_comment, follow_up_date, follow_up_time
		FROM leads
		WHERE namespace = $1
	`

	rows, err := r.DB.QueryContext(ctx, query, namespace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(
			&l.ID,
			&l.CreatedTime,
			&l.Platform,
			&l.Name,
			&l.WhatsappNumber,
			&l.LeadStatus,
			&l.Comments,
			&l.CustomerComment,
			&l.FollowUpDate,
			&l.FollowUpTime,
		); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}

	return leads, rows.Err()
}


// CreateMany inserts every lead concurrently and joins on the whole
// batch. The uniqueness constraint on (namespace, whatsapp_number,
// created_time) is the backstop against two concurrent syncs racing on
// the same feed: the loser's insert lands as a duplicate, not a copy.
// There is no multi-record transaction and no rollback.
func (r *LeadRepository) CreateMany(ctx context.Context, namespace string, leads []entity.Lead) (*entity.BatchResult, error) {
	query := `
		INSERT INTO leads (
			id, namespace, created_time, platform, name, whatsapp_number,
			lead_status, comments, customer_comment, follow_up_date, follow_up_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (namespace, whatsapp_number, created_time) DO NOTHING
	`

	result := &entity.BatchResult{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := range leads {
		wg.Add(1)
		go func(index int, l entity.Lead) {
			defer wg.Done()

			// Temporary client ids from CSV import never reach the store.
			id := l.ID
			if id == "" || strings.HasPrefix(id, "tmp-") {
				id = uuid.New().String()
			}

			res, err := r.DB.ExecContext(ctx, query,
				id,
				namespace,
				l.CreatedTime,
				l.Platform,
				l.Name,
				l.WhatsappNumber,
				l.LeadStatus,
				l.Comments,
				l.CustomerComment,
				l.FollowUpDate,
				l.FollowUpTime,
			)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("❌ Lead insert failed (ns=%s): %v", namespace, err)
				result.Failed = append(result.Failed, entity.BatchFailure{
					Index:  index,
					Reason: err.Error(),
				})
				return
			}
			if n, _ := res.RowsAffected(); n == 0 {
				result.Duplicates++
				return
			}
			result.Created++
		}(i, leads[i])
	}

	wg.Wait()
	return result, nil
}


// Columns a partial update may touch. The JSON field names of the
// dashboard payloads map onto these.
var updatableColumns = map[string]bool{
	"lead_status":      true,
	"comments":         true,
	"customer_comment": true,
	"follow_up_date":   true,
	"follow_up_time":   true,
	"reminder_sent":    true,
}


func (r *LeadRepository) UpdatePartial(ctx context.Context, namespace, id string, fields map[string]string) error {
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setClauses := make([]string, 0, len(fields))
	args := []interface{}{namespace, id}
	for column, value := range fields {
		if !updatableColumns[column] {
			return fmt.Errorf("field %q cannot be updated", column)
		}
		if column == "reminder_sent" {
			setClauses = append(setClauses, fmt.Sprintf("%s = $%d::boolean", column, len(args)+1))
		} else {
			setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)+1))
		}
		args = append(args, value)
	}

	query := fmt.Sprintf(
		"UPDATE leads SET %s WHERE namespace = $1 AND id = $2",
		strings.Join(setClauses, ", "),
	)

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}
