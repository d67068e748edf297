package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadboard/internal/csvio"
	"github.com/xavierca1/leadboard/internal/entity"
	"github.com/xavierca1/leadboard/internal/infra/http/middleware"
	"github.com/xavierca1/leadboard/internal/usecase"
)


type LeadHandler struct {
	LeadRepo entity.LeadRepositoryInterface
	Transfer *usecase.LeadTransferUseCase
	Update   *usecase.UpdateLeadUseCase
}


func NewLeadHandler(
	leadRepo entity.LeadRepositoryInterface,
	transfer *usecase.LeadTransferUseCase,
	update *usecase.UpdateLeadUseCase,
) *LeadHandler {
	return &LeadHandler{
		LeadRepo: leadRepo,
		Transfer: transfer,
		Update:   update,
	}
}


type listLeadsResponse struct {
	Leads      []entity.Lead `json:"leads"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	Total      int           `json:"total"`
	KPIs       []entity.KPI  `json:"kpis"`
}


// HandleList is the table view: filter, sort newest-first, one fixed
// 20-row page. KPIs always cover the whole unfiltered list.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, usecase.NewAuthRequiredError("session missing"))
		return
	}
	namespace, err := session.Namespace()
	if err != nil {
		writeError(w, err)
		return
	}

	leads, err := h.LeadRepo.ListAll(r.Context(), namespace)
	if err != nil {
		writeError(w, usecase.NewPersistError("failed to read leads", err))
		return
	}

	q := r.URL.Query()
	filter := usecase.LeadFilter{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Platform: q.Get("platform"),
	}
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	filtered := usecase.SortByCreatedTimeDesc(usecase.FilterLeads(leads, filter))
	pageLeads, totalPages := usecase.Paginate(filtered, page)
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	writeJSON(w, http.StatusOK, listLeadsResponse{
		Leads:      pageLeads,
		Page:       page,
		TotalPages: totalPages,
		Total:      len(filtered),
		KPIs:       entity.ComputeKPIs(leads),
	})
}


type leadDetailResponse struct {
	Lead      entity.Lead        `json:"lead"`
	Insight   entity.LeadInsight `json:"insight"`
	ScoreBand string             `json:"score_band,omitempty"`
}


// HandleGet backs the detail side panel: the lead plus the structured
// read of its comments field.
func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, usecase.NewAuthRequiredError("session missing"))
		return
	}
	namespace, err := session.Namespace()
	if err != nil {
		writeError(w, err)
		return
	}

	leadID := chi.URLParam(r, "id")

	leads, err := h.LeadRepo.ListAll(r.Context(), namespace)
	if err != nil {
		writeError(w, usecase.NewPersistError("failed to read leads", err))
		return
	}

	for i := range leads {
		if leads[i].ID == leadID {
			insight := entity.ParseInsight(leads[i].Comments)
			resp := leadDetailResponse{Lead: leads[i], Insight: insight}
			if insight.HasScore {
				resp.ScoreBand = entity.ScoreBand(insight.Score)
			}
			writeJSON(w, http.StatusOK, resp)
			return
		}
	}

	writeError(w, usecase.NewNotFoundError("lead "+leadID+" not found"))
}


func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, func(session usecase.Session, leadID string, body map[string]string) error {
		return h.Update.ChangeStatus(r.Context(), session, leadID, body["lead_status"])
	})
}


func (h *LeadHandler) HandleScheduleFollowUp(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, func(session usecase.Session, leadID string, body map[string]string) error {
		return h.Update.ScheduleFollowUp(r.Context(), session, leadID,
			body["followUpDate"], body["followUpTime"])
	})
}


func (h *LeadHandler) HandleEditComment(w http.ResponseWriter, r *http.Request) {
	h.patch(w, r, func(session usecase.Session, leadID string, body map[string]string) error {
		return h.Update.EditCustomerComment(r.Context(), session, leadID, body["customerComment"])
	})
}


func (h *LeadHandler) patch(
	w http.ResponseWriter,
	r *http.Request,
	apply func(session usecase.Session, leadID string, body map[string]string) error,
) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, usecase.NewAuthRequiredError("session missing"))
		return
	}

	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, usecase.NewFormatError("invalid JSON body"))
		return
	}

	if err := apply(session, chi.URLParam(r, "id"), body); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}


// HandleImport takes the uploaded CSV (multipart "file" field, or the
// raw body for text/csv posts) and bulk-creates the rows.
func (h *LeadHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, usecase.NewAuthRequiredError("session missing"))
		return
	}

	csvText, err := readUpload(r)
	if err != nil {
		middleware.RecordCSVImport("error")
		writeError(w, usecase.NewFormatError(err.Error()))
		return
	}

	out, err := h.Transfer.Import(r.Context(), session, csvText)
	if err != nil {
		middleware.RecordCSVImport("error")
		writeError(w, err)
		return
	}

	middleware.RecordCSVImport("success")
	writeJSON(w, http.StatusCreated, out)
}


func readUpload(r *http.Request) ([]byte, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("csv file upload missing: %v", err)
		}
		defer file.Close()
		return io.ReadAll(file)
	}
	return io.ReadAll(r.Body)
}


// HandleExport streams the whole list as a CSV attachment named
// leads_export_<ISO-date>.csv.
func (h *LeadHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, usecase.NewAuthRequiredError("session missing"))
		return
	}

	data, err := h.Transfer.Export(r.Context(), session)
	if err != nil {
		writeError(w, err)
		return
	}

	filename := fmt.Sprintf("leads_export_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}


// HandleTemplate serves the header-only sample file for import.
func (h *LeadHandler) HandleTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sample_leads.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(csvio.SampleTemplate())
}
