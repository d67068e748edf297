package handlers

import (
	"net/http"

	"github.com/xavierca1/leadboard/internal/infra/http/middleware"
	"github.com/xavierca1/leadboard/internal/usecase"
)


type DashboardHandler struct {
	Dashboard *usecase.DashboardUseCase
	Sync      usecase.SyncServiceInterface
}


func NewDashboardHandler(dashboard *usecase.DashboardUseCase, sync usecase.SyncServiceInterface) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard, Sync: sync}
}


// HandleLoad runs the full load sequence: store read, sheet sync,
// re-read. The soft "no leads available" state comes back as 200 with
// a warning, not as an error.
func (h *DashboardHandler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, usecase.NewAuthRequiredError("session missing"))
		return
	}

	out, err := h.Dashboard.Load(r.Context(), session)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadsSynced(out.NewLeadsAdded)
	writeJSON(w, http.StatusOK, out)
}


// HandleSync triggers a sheet sync on its own, outside the load
// sequence. Zero new leads is a success.
func (h *DashboardHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeError(w, usecase.NewAuthRequiredError("session missing"))
		return
	}

	out, err := h.Sync.Execute(r.Context(), session)
	if err != nil {
		middleware.RecordIntegrationError("sheetfeed")
		writeError(w, err)
		return
	}

	middleware.RecordLeadsSynced(out.Added)
	writeJSON(w, http.StatusOK, out)
}
