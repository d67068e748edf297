package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/xavierca1/leadboard/internal/entity"
)


// PageSize is fixed: the dashboard table always shows 20 rows.
const PageSize = 20


// LeadFilter is the query surface of the leads table: free-text search
// over name/number/comments plus exact status and platform filters,
// all ANDed. "all" (or empty) disables a filter.
type LeadFilter struct {
	Search   string
	Status   string
	Platform string
}


func (f LeadFilter) matches(l *entity.Lead) bool {
	if f.Status != "" && f.Status != "all" && l.LeadStatus != f.Status {
		return false
	}
	if f.Platform != "" && f.Platform != "all" && l.Platform != f.Platform {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(l.Name), term) &&
			!strings.Contains(strings.ToLower(l.WhatsappNumber), term) &&
			!strings.Contains(strings.ToLower(l.Comments), term) {
			return false
		}
	}
	return true
}


func FilterLeads(leads []entity.Lead, f LeadFilter) []entity.Lead {
	out := make([]entity.Lead, 0, len(leads))
	for i := range leads {
		if f.matches(&leads[i]) {
			out = append(out, leads[i])
		}
	}
	return out
}


// SortByCreatedTimeDesc returns a copy sorted newest first. Timestamps
// that parse as RFC3339 are compared as times; anything else falls back
// to string comparison so odd feed values still sort deterministically.
func SortByCreatedTimeDesc(leads []entity.Lead) []entity.Lead {
	out := make([]entity.Lead, len(leads))
	copy(out, leads)
	sort.SliceStable(out, func(i, j int) bool {
		ti, iok := parseCreatedTime(out[i].CreatedTime)
		tj, jok := parseCreatedTime(out[j].CreatedTime)
		if iok && jok {
			return ti.After(tj)
		}
		return out[i].CreatedTime > out[j].CreatedTime
	})
	return out
}

func parseCreatedTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}


// Paginate slices one fixed-size page out of the filtered-and-sorted
// list. Pages are 1-based; out-of-range pages clamp into range.
func Paginate(leads []entity.Lead, page int) ([]entity.Lead, int) {
	totalPages := (len(leads) + PageSize - 1) / PageSize
	if totalPages == 0 {
		return []entity.Lead{}, 0
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(leads) {
		end = len(leads)
	}
	return leads[start:end], totalPages
}
