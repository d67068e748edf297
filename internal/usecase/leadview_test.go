package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/usecase"
)

func sampleLeads() []entity.Lead {
	return []entity.Lead{
		{ID: "1", Name: "Jane Kapoor", WhatsappNumber: "919876543210", Platform: "fb", LeadStatus: entity.StatusNewLead, Comments: "interested in piano", CreatedTime: "2024-01-01T00:00:00Z"},
		{ID: "2", Name: "Ravi Mehta", WhatsappNumber: "918765432109", Platform: "ig", LeadStatus: entity.StatusMeetingDone, Comments: "call back later", CreatedTime: "2024-01-03T00:00:00Z"},
		{ID: "3", Name: "Anita Shah", WhatsappNumber: "917654321098", Platform: "fb", LeadStatus: entity.StatusDealDone, Comments: "paid upfront", CreatedTime: "2024-01-02T00:00:00Z"},
	}
}

// TestFilterSearchIsCaseInsensitiveSubstring
func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	leads := sampleLeads()

	out := usecase.FilterLeads(leads, usecase.LeadFilter{Search: "JANE"})
	assert.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)

	// Matches number...
	out = usecase.FilterLeads(leads, usecase.LeadFilter{Search: "8765432"})
	assert.Len(t, out, 2)

	// ...and comments.
	out = usecase.FilterLeads(leads, usecase.LeadFilter{Search: "piano"})
	assert.Len(t, out, 1)
}

// TestFiltersAreANDed - status, platform and search must all match
func TestFiltersAreANDed(t *testing.T) {
	leads := sampleLeads()

	out := usecase.FilterLeads(leads, usecase.LeadFilter{
		Status:   entity.StatusDealDone,
		Platform: "fb",
	})
	assert.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)

	out = usecase.FilterLeads(leads, usecase.LeadFilter{
		Status:   entity.StatusDealDone,
		Platform: "ig",
	})
	assert.Empty(t, out)

	// "all" disables a filter.
	out = usecase.FilterLeads(leads, usecase.LeadFilter{Status: "all", Platform: "all"})
	assert.Len(t, out, 3)
}

// TestStatusFilterIsExactMatch - "Deal done" is not "Deal Done"
func TestStatusFilterIsExactMatch(t *testing.T) {
	leads := sampleLeads()

	out := usecase.FilterLeads(leads, usecase.LeadFilter{Status: "Deal Done"})
	assert.Empty(t, out)

	out = usecase.FilterLeads(leads, usecase.LeadFilter{Status: "Deal done"})
	assert.Len(t, out, 1)
}

// TestSortNewestFirst
func TestSortNewestFirst(t *testing.T) {
	out := usecase.SortByCreatedTimeDesc(sampleLeads())

	assert.Equal(t, []string{"2", "3", "1"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

// TestPaginationMath - ceil(L/20) pages, every page full except maybe the last
func TestPaginationMath(t *testing.T) {
	leads := make([]entity.Lead, 45)
	for i := range leads {
		leads[i].ID = fmt.Sprintf("lead-%d", i)
	}

	page1, totalPages := usecase.Paginate(leads, 1)
	assert.Equal(t, 3, totalPages)
	assert.Len(t, page1, 20)

	page3, _ := usecase.Paginate(leads, 3)
	assert.Len(t, page3, 5)

	// Out-of-range pages clamp.
	clamped, _ := usecase.Paginate(leads, 99)
	assert.Len(t, clamped, 5)
	first, _ := usecase.Paginate(leads, 0)
	assert.Equal(t, "lead-0", first[0].ID)

	empty, totalPages := usecase.Paginate(nil, 1)
	assert.Empty(t, empty)
	assert.Equal(t, 0, totalPages)
}
