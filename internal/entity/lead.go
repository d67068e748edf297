package entity

import (
	"context"
	"errors"
	"time"
)


type Lead struct {
	ID              string `json:"id"`
	CreatedTime     string `json:"created_time"`
	Platform        string `json:"platform"`
	Name            string `json:"name"`
	WhatsappNumber  string `json:"whatsapp_number_"`
	LeadStatus      string `json:"lead_status"` // "New Lead", "Meeting Done", "Deal done" or custom
	Comments        string `json:"comments"`
	CustomerComment string `json:"customerComment,omitempty"`
	FollowUpDate    string `json:"followUpDate,omitempty"`
	FollowUpTime    string `json:"followUpTime,omitempty"`
}


const (
	StatusNewLead     = "New Lead"
	StatusMeetingDone = "Meeting Done"
	StatusDealDone    = "Deal done"
)


// NaturalKey identifies a lead across the sheet feed and the store.
// Two leads with the same number and created_time are the same lead.
func (l *Lead) NaturalKey() string {
	return l.WhatsappNumber + "_" + l.CreatedTime
}


var ErrLeadNotFound = errors.New("lead not found")


// SyncMarker records that a namespace was synced from the sheet feed.
// Metadata only, never a lead.
type SyncMarker struct {
	Namespace    string    `json:"namespace"`
	Source       string    `json:"source"`
	LastSyncedAt time.Time `json:"lastSyncedAt"`
}


// BatchResult reports what actually happened inside a multi-record create.
// Records already persisted stay persisted; there is no rollback.
type BatchResult struct {
	Created    int            `json:"created"`
	Duplicates int            `json:"duplicates"`
	Failed     []BatchFailure `json:"failed,omitempty"`
}

type BatchFailure struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

func (r *BatchResult) Ok() bool {
	return len(r.Failed) == 0
}


type LeadRepositoryInterface interface {
	ListAll(ctx context.Context, namespace string) ([]Lead, error)
	CreateMany(ctx context.Context, namespace string, leads []Lead) (*BatchResult, error)
	UpdatePartial(ctx context.Context, namespace, id string, fields map[string]string) error
}
