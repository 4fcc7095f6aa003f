package handler

import (
	"net/http"
	"time"

	barangaydomain "barangay-records-go/internal/domain/barangay"
)

type barangayRequest struct {
	Name    string `json:"name"`
	History string `json:"history"`
	Mission string `json:"mission"`
	Vision  string `json:"vision"`
}

type barangayResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	History   string    `json:"history"`
	Mission   string    `json:"mission"`
	Vision    string    `json:"vision"`
	DateAdded time.Time `json:"date_added"`
}

func toBarangayResponse(record *barangaydomain.Barangay) barangayResponse {
	return barangayResponse{
		ID:        record.ID,
		Name:      record.Name,
		History:   record.History,
		Mission:   record.Mission,
		Vision:    record.Vision,
		DateAdded: record.DateAdded,
	}
}

func (h *Handlers) GetBarangay(w http.ResponseWriter, r *http.Request) {
	record, err := h.Barangays.Get(r.Context())
	if err != nil {
		h.respondError(w, "barangay.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toBarangayResponse(record))
}

func (h *Handlers) SaveBarangay(w http.ResponseWriter, r *http.Request) {
	var req barangayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	record, err := h.Barangays.Save(r.Context(), barangaydomain.Input{
		Name:    req.Name,
		History: req.History,
		Mission: req.Mission,
		Vision:  req.Vision,
	})
	if err != nil {
		h.respondError(w, "barangay.save", err)
		return
	}
	writeJSON(w, http.StatusOK, toBarangayResponse(record))
}
