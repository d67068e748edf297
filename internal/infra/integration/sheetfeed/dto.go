package sheetfeed

import "github.com/xavierca1/leadboard/internal/entity"


type FeedResponse struct {
	Leads []FeedLead `json:"leads"`
}

// FeedLead mirrors the sheet row shape. The feed has no ids; identity
// is assigned by the store on persist.
type FeedLead struct {
	CreatedTime    string `json:"created_time"`
	Platform       string `json:"platform"`
	Name           string `json:"name"`
	WhatsappNumber string `json:"whatsapp_number_"`
	LeadStatus     string `json:"lead_status"`
	Comments       string `json:"comments"`
}

func (f FeedLead) ToLead() entity.Lead {
	status := f.LeadStatus
	if status == "" {
		status = entity.StatusNewLead
	}
	return entity.Lead{
		CreatedTime:    f.CreatedTime,
		Platform:       f.Platform,
		Name:           f.Name,
		WhatsappNumber: f.WhatsappNumber,
		LeadStatus:     status,
		Comments:       f.Comments,
	}
}
