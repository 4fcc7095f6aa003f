package handler

import "net/http"

func (h *Handlers) DashboardSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Dashboard.Summary(r.Context())
	if err != nil {
		h.respondError(w, "dashboard.summary", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
