package handler

import (
	"net/http"
	"time"

	residentdomain "barangay-records-go/internal/domain/resident"
	"github.com/go-chi/chi/v5"
)

type residentRequest struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	MiddleName    string `json:"middle_name"`
	Suffix        string `json:"suffix"`
	DateOfBirth   string `json:"date_of_birth"`
	Occupation    string `json:"occupation"`
	CivilStatus   string `json:"civil_status"`
	Citizenship   string `json:"citizenship"`
	Sex           string `json:"sex"`
	Education     string `json:"education"`
	Remarks       string `json:"remarks"`
	Phone1        string `json:"phone_1"`
	Phone2        string `json:"phone_2"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	HouseholdName string `json:"household_name"`
}

type residentResponse struct {
	ID            string     `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	MiddleName    string     `json:"middle_name"`
	Suffix        string     `json:"suffix"`
	FullName      string     `json:"full_name"`
	DateOfBirth   *time.Time `json:"date_of_birth"`
	Occupation    string     `json:"occupation"`
	CivilStatus   string     `json:"civil_status"`
	Citizenship   string     `json:"citizenship"`
	Sex           string     `json:"sex"`
	Education     string     `json:"education"`
	Remarks       string     `json:"remarks"`
	Phone1        string     `json:"phone_1"`
	Phone2        string     `json:"phone_2"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	HouseholdID   string     `json:"household_id"`
	HouseholdName string     `json:"household_name"`
	Address       string     `json:"address"`
	DateAdded     time.Time  `json:"date_added"`
}

func toResidentResponse(record *residentdomain.Resident) residentResponse {
	return residentResponse{
		ID:            record.ID,
		FirstName:     record.FirstName,
		LastName:      record.LastName,
		MiddleName:    record.MiddleName,
		Suffix:        record.Suffix,
		FullName:      record.FullName(),
		DateOfBirth:   record.DateOfBirth,
		Occupation:    record.Occupation,
		CivilStatus:   record.CivilStatus,
		Citizenship:   record.Citizenship,
		Sex:           record.Sex,
		Education:     record.Education,
		Remarks:       record.Remarks,
		Phone1:        record.Phone1,
		Phone2:        record.Phone2,
		Email:         record.Email,
		Role:          record.Role,
		HouseholdID:   record.HouseholdID,
		HouseholdName: record.Household.HouseholdName,
		Address:       record.Household.Address(),
		DateAdded:     record.DateAdded,
	}
}

func (req residentRequest) toInput() (residentdomain.Input, error) {
	dob, err := parseDateParam(req.DateOfBirth)
	if err != nil {
		return residentdomain.Input{}, err
	}
	return residentdomain.Input{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		MiddleName:    req.MiddleName,
		Suffix:        req.Suffix,
		DateOfBirth:   dob,
		Occupation:    req.Occupation,
		CivilStatus:   req.CivilStatus,
		Citizenship:   req.Citizenship,
		Sex:           req.Sex,
		Education:     req.Education,
		Remarks:       req.Remarks,
		Phone1:        req.Phone1,
		Phone2:        req.Phone2,
		Email:         req.Email,
		Role:          req.Role,
		HouseholdName: req.HouseholdName,
	}, nil
}

func (h *Handlers) ListResidents(w http.ResponseWriter, r *http.Request) {
	records, err := h.Residents.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondError(w, "residents.list", err)
		return
	}

	rows := make([]residentResponse, 0, len(records))
	for i := range records {
		rows = append(rows, toResidentResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) GetResident(w http.ResponseWriter, r *http.Request) {
	record, err := h.Residents.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, "residents.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toResidentResponse(record))
}

func (h *Handlers) CreateResident(w http.ResponseWriter, r *http.Request) {
	var req residentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_of_birth must be YYYY-MM-DD")
		return
	}

	record, err := h.Residents.Create(r.Context(), in)
	if err != nil {
		h.respondError(w, "residents.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toResidentResponse(record))
}

func (h *Handlers) UpdateResident(w http.ResponseWriter, r *http.Request) {
	var req residentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	in, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_of_birth must be YYYY-MM-DD")
		return
	}

	record, err := h.Residents.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.respondError(w, "residents.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toResidentResponse(record))
}

func (h *Handlers) DeleteResident(w http.ResponseWriter, r *http.Request) {
	if err := h.Residents.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, "residents.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
