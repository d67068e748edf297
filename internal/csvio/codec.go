package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/xavierca1/leadboard/internal/entity"
)


// ErrBadFormat wraps every CSV shape problem: missing header, ragged
// rows, unreadable input. A single bad row rejects the whole file —
// there is no partial recovery on import.
var ErrBadFormat = errors.New("malformed csv")


// The six columns the importer understands. Anything else in the
// header is ignored.
var CanonicalHeaders = []string{
	"created_time",
	"platform",
	"name",
	"whatsapp_number_",
	"lead_status",
	"comments",
}

// Export carries the full record, not just the import columns.
var exportHeaders = []string{
	"id",
	"created_time",
	"platform",
	"name",
	"whatsapp_number_",
	"lead_status",
	"comments",
	"customerComment",
	"followUpDate",
	"followUpTime",
}


// Parse decodes uploaded CSV text into leads. Header cells are trimmed
// before matching. Missing or empty cells get defaults: created_time
// becomes the current time, lead_status becomes "New Lead", the rest
// stay empty. Every row receives a temporary client id, unique within
// the batch only; the store assigns the real id on persist.
func Parse(data []byte) ([]entity.Lead, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrBadFormat)
	}

	col := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		col[strings.TrimSpace(h)] = i
	}

	cell := func(row []string, name string) string {
		if i, ok := col[name]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	leads := make([]entity.Lead, 0, len(records)-1)
	for _, row := range records[1:] {
		lead := entity.Lead{
			ID:             "tmp-" + uuid.New().String(),
			CreatedTime:    cell(row, "created_time"),
			Platform:       cell(row, "platform"),
			Name:           cell(row, "name"),
			WhatsappNumber: cell(row, "whatsapp_number_"),
			LeadStatus:     cell(row, "lead_status"),
			Comments:       cell(row, "comments"),
		}
		if lead.CreatedTime == "" {
			lead.CreatedTime = time.Now().Format(time.RFC3339)
		}
		if lead.LeadStatus == "" {
			lead.LeadStatus = entity.StatusNewLead
		}
		leads = append(leads, lead)
	}

	return leads, nil
}


// Serialize emits one row per lead with all fields as columns.
func Serialize(leads []entity.Lead) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for i := range leads {
		l := &leads[i]
		record := []string{
			l.ID,
			l.CreatedTime,
			l.Platform,
			l.Name,
			l.WhatsappNumber,
			l.LeadStatus,
			l.Comments,
			l.CustomerComment,
			l.FollowUpDate,
			l.FollowUpTime,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}


// SampleTemplate is the header-only file users download before import.
func SampleTemplate() []byte {
	return []byte(strings.Join(CanonicalHeaders, ",") + "\n")
}
