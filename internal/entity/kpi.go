package entity


// KPI is a derived, ephemeral count over the in-memory lead list.
// Recomputed after every mutation, never persisted.
type KPI struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}


func ComputeKPIs(leads []Lead) []KPI {
	total := len(leads)
	newLeads := 0
	meetings := 0
	deals := 0

	for i := range leads {
		switch leads[i].LeadStatus {
		case StatusNewLead:
			newLeads++
		case StatusMeetingDone:
			meetings++
		case StatusDealDone:
			deals++
		}
	}

	return []KPI{
		{Label: "Total Leads", Count: total, Color: "#3b82f6"},
		{Label: "New Leads", Count: newLeads, Color: "#f59e0b"},
		{Label: "Meeting Done", Count: meetings, Color: "#8b5cf6"},
		{Label: "Deal Done", Count: deals, Color: "#22c55e"},
	}
}
