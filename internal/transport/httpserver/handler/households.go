package handler

import (
	"net/http"
	"time"

	householddomain "barangay-records-go/internal/domain/household"
	"github.com/go-chi/chi/v5"
)

type householdRequest struct {
	HouseholdName string `json:"household_name"`
	HouseNo       string `json:"house_no"`
	Street        string `json:"street"`
	Sitio         string `json:"sitio"`
	Landmark      string `json:"landmark"`
}

type householdResponse struct {
	ID            string    `json:"id"`
	HouseholdName string    `json:"household_name"`
	HouseNo       string    `json:"house_no"`
	Street        string    `json:"street"`
	Sitio         string    `json:"sitio"`
	Landmark      string    `json:"landmark"`
	Address       string    `json:"address"`
	DateAdded     time.Time `json:"date_added"`
}

func toHouseholdResponse(record *householddomain.Household) householdResponse {
	return householdResponse{
		ID:            record.ID,
		HouseholdName: record.HouseholdName,
		HouseNo:       record.HouseNo,
		Street:        record.Street,
		Sitio:         record.Sitio,
		Landmark:      record.Landmark,
		Address:       record.Address(),
		DateAdded:     record.DateAdded,
	}
}

func (req householdRequest) toInput() householddomain.Input {
	return householddomain.Input{
		HouseholdName: req.HouseholdName,
		HouseNo:       req.HouseNo,
		Street:        req.Street,
		Sitio:         req.Sitio,
		Landmark:      req.Landmark,
	}
}

func (h *Handlers) ListHouseholds(w http.ResponseWriter, r *http.Request) {
	records, err := h.Households.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondError(w, "households.list", err)
		return
	}

	rows := make([]householdResponse, 0, len(records))
	for i := range records {
		rows = append(rows, toHouseholdResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) GetHousehold(w http.ResponseWriter, r *http.Request) {
	record, err := h.Households.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, "households.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toHouseholdResponse(record))
}

func (h *Handlers) CreateHousehold(w http.ResponseWriter, r *http.Request) {
	var req householdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	record, err := h.Households.Create(r.Context(), req.toInput())
	if err != nil {
		h.respondError(w, "households.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toHouseholdResponse(record))
}

func (h *Handlers) UpdateHousehold(w http.ResponseWriter, r *http.Request) {
	var req householdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	record, err := h.Households.Update(r.Context(), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		h.respondError(w, "households.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toHouseholdResponse(record))
}

func (h *Handlers) DeleteHousehold(w http.ResponseWriter, r *http.Request) {
	if err := h.Households.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, "households.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
