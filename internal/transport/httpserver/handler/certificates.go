package handler

import (
	"net/http"
	"time"

	certificatedomain "barangay-records-go/internal/domain/certificate"
	"github.com/go-chi/chi/v5"
)

type certificateRequest struct {
	DateIssued string `json:"date_issued"`
	Type       string `json:"type"`
	Purpose    string `json:"purpose"`
	ResidentID string `json:"resident_id"`
}

type certificateResponse struct {
	ID           string    `json:"id"`
	DateIssued   time.Time `json:"date_issued"`
	Type         string    `json:"type"`
	Purpose      string    `json:"purpose"`
	ResidentID   string    `json:"resident_id"`
	ResidentName string    `json:"resident_name"`
	DateAdded    time.Time `json:"date_added"`
}

func toCertificateResponse(record *certificatedomain.Certificate) certificateResponse {
	return certificateResponse{
		ID:           record.ID,
		DateIssued:   record.DateIssued,
		Type:         record.Type,
		Purpose:      record.Purpose,
		ResidentID:   record.ResidentID,
		ResidentName: record.Resident.FullName(),
		DateAdded:    record.DateAdded,
	}
}

func (req certificateRequest) toInput() (certificatedomain.Input, error) {
	issued, err := parseDateParam(req.DateIssued)
	if err != nil {
		return certificatedomain.Input{}, err
	}
	return certificatedomain.Input{
		DateIssued: issued,
		Type:       req.Type,
		Purpose:    req.Purpose,
		ResidentID: req.ResidentID,
	}, nil
}

func (h *Handlers) ListCertificates(w http.ResponseWriter, r *http.Request) {
	records, err := h.Certificates.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondError(w, "certificates.list", err)
		return
	}

	rows := make([]certificateResponse, 0, len(records))
	for i := range records {
		rows = append(rows, toCertificateResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) GetCertificate(w http.ResponseWriter, r *http.Request) {
	record, err := h.Certificates.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, "certificates.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toCertificateResponse(record))
}

func (h *Handlers) CreateCertificate(w http.ResponseWriter, r *http.Request) {
	var req certificateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_issued must be YYYY-MM-DD")
		return
	}

	record, err := h.Certificates.Create(r.Context(), in)
	if err != nil {
		h.respondError(w, "certificates.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toCertificateResponse(record))
}

func (h *Handlers) UpdateCertificate(w http.ResponseWriter, r *http.Request) {
	var req certificateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_issued must be YYYY-MM-DD")
		return
	}

	record, err := h.Certificates.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.respondError(w, "certificates.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toCertificateResponse(record))
}

func (h *Handlers) DeleteCertificate(w http.ResponseWriter, r *http.Request) {
	if err := h.Certificates.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, "certificates.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
