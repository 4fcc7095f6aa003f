package handler

import (
	"net/http"
	"time"

	blotterdomain "barangay-records-go/internal/domain/blotter"
	"github.com/go-chi/chi/v5"
)

type blotterRequest struct {
	RecordDate      string `json:"record_date"`
	Status          string `json:"status"`
	ActionTaken     string `json:"action_taken"`
	NatureOfDispute string `json:"nature_of_dispute"`
	Complainant     string `json:"complainant"`
	Respondent      string `json:"respondent"`
	FullReport      string `json:"full_report"`
}

type blotterResponse struct {
	ID              string    `json:"id"`
	RecordDate      time.Time `json:"record_date"`
	Status          string    `json:"status"`
	ActionTaken     string    `json:"action_taken"`
	NatureOfDispute string    `json:"nature_of_dispute"`
	Complainant     string    `json:"complainant"`
	Respondent      string    `json:"respondent"`
	FullReport      string    `json:"full_report"`
	DateAdded       time.Time `json:"date_added"`
}

func toBlotterResponse(record *blotterdomain.Blotter) blotterResponse {
	return blotterResponse{
		ID:              record.ID,
		RecordDate:      record.RecordDate,
		Status:          record.Status,
		ActionTaken:     record.ActionTaken,
		NatureOfDispute: record.NatureOfDispute,
		Complainant:     record.Complainant,
		Respondent:      record.Respondent,
		FullReport:      record.FullReport,
		DateAdded:       record.DateAdded,
	}
}

func (req blotterRequest) toInput() (blotterdomain.Input, error) {
	recordDate, err := parseDateParam(req.RecordDate)
	if err != nil {
		return blotterdomain.Input{}, err
	}
	return blotterdomain.Input{
		RecordDate:      recordDate,
		Status:          req.Status,
		ActionTaken:     req.ActionTaken,
		NatureOfDispute: req.NatureOfDispute,
		Complainant:     req.Complainant,
		Respondent:      req.Respondent,
		FullReport:      req.FullReport,
	}, nil
}

func (h *Handlers) ListBlotters(w http.ResponseWriter, r *http.Request) {
	records, err := h.Blotters.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondError(w, "blotters.list", err)
		return
	}

	rows := make([]blotterResponse, 0, len(records))
	for i := range records {
		rows = append(rows, toBlotterResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) GetBlotter(w http.ResponseWriter, r *http.Request) {
	record, err := h.Blotters.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, "blotters.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toBlotterResponse(record))
}

func (h *Handlers) CreateBlotter(w http.ResponseWriter, r *http.Request) {
	var req blotterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "record_date must be YYYY-MM-DD")
		return
	}

	record, err := h.Blotters.Create(r.Context(), in)
	if err != nil {
		h.respondError(w, "blotters.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toBlotterResponse(record))
}

func (h *Handlers) UpdateBlotter(w http.ResponseWriter, r *http.Request) {
	var req blotterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "record_date must be YYYY-MM-DD")
		return
	}

	record, err := h.Blotters.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.respondError(w, "blotters.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toBlotterResponse(record))
}

func (h *Handlers) DeleteBlotter(w http.ResponseWriter, r *http.Request) {
	if err := h.Blotters.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, "blotters.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
