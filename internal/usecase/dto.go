package usecase

import "github.com/xavierca1/leadboard/internal/entity"

type SyncOutput struct {
	Namespace  string `json:"namespace"`
	FeedTotal  int    `json:"feed_total"`
	Added      int    `json:"added"`
	Duplicates int    `json:"duplicates"`
}

type DashboardOutput struct {
	Leads         []entity.Lead `json:"leads"`
	KPIs          []entity.KPI  `json:"kpis"`
	NewLeadsAdded int           `json:"new_leads_added"`
	Warning       string        `json:"warning,omitempty"`
}

type ImportOutput struct {
	Imported int           `json:"imported"`
	Leads    []entity.Lead `json:"leads"`
	KPIs     []entity.KPI  `json:"kpis"`
}
