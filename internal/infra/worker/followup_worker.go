package worker

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/xavierca1/leadboard/internal/infra/http/middleware"
	"github.com/xavierca1/leadboard/internal/infra/queue"
)


// FollowUpReminderWorker scans for leads whose scheduled follow-up has
// come due and publishes one reminder each. Marking reminder_sent in
// the same statement that selects the rows keeps two instances from
// double-publishing.
type FollowUpReminderWorker struct {
	db           *sql.DB
	producer     queue.ReminderProducerInterface
	tickInterval time.Duration
}


func NewFollowUpReminderWorker(db *sql.DB, producer queue.ReminderProducerInterface) *FollowUpReminderWorker {
	return &FollowUpReminderWorker{
		db:           db,
		producer:     producer,
		tickInterval: 1 * time.Minute,
	}
}


func (w *FollowUpReminderWorker) Start(ctx context.Context) {
	log.Println("🕒 Follow-up reminder worker iniciado")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.publishDueReminders(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Follow-up reminder worker encerrado")
			return
		case <-ticker.C:
			w.publishDueReminders(ctx)
		}
	}
}


func (w *FollowUpReminderWorker) publishDueReminders(ctx context.Context) {
	// Follow-up fields are stored as the dashboard sends them:
	// date "2006-01-02", time "15:04" (optional, empty means any time).
	query := `
		UPDATE leads
		SET reminder_sent = true
		WHERE
			reminder_sent = false
			AND follow_up_date <> ''
			AND (follow_up_date || ' ' || COALESCE(NULLIF(follow_up_time, ''), '00:00'))
			    <= to_char(NOW(), 'YYYY-MM-DD HH24:MI')
		RETURNING id, namespace, name, whatsapp_number, follow_up_date, follow_up_time
	`

	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Erro ao buscar follow-ups vencidos: %v", err)
		return
	}
	defer rows.Close()

	published := 0
	for rows.Next() {
		var p queue.ReminderPayload
		if err := rows.Scan(&p.LeadID, &p.Namespace, &p.LeadName,
			&p.WhatsappNumber, &p.FollowUpDate, &p.FollowUpTime); err != nil {
			log.Printf("⚠️ Erro ao escanear follow-up vencido: %v", err)
			continue
		}

		// The namespace is the owner's 10-digit phone suffix.
		p.OwnerPhone = p.Namespace

		if err := w.producer.PublishReminder(ctx, p); err != nil {
			log.Printf("❌ Erro ao publicar reminder (lead=%s): %v", p.LeadID, err)
			continue
		}
		middleware.RecordFollowUpReminder()
		published++
	}

	if published > 0 {
		log.Printf("⏰ %d follow-up reminder(s) publicados", published)
	}
}
