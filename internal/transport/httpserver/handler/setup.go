package handler

import (
	"net/http"

	barangaydomain "barangay-records-go/internal/domain/barangay"
	setupdomain "barangay-records-go/internal/domain/setup"
)

type setupRequest struct {
	Barangay  barangayRequest  `json:"barangay"`
	Household householdRequest `json:"household"`
	Resident  residentRequest  `json:"resident"`
	User      userRequest      `json:"user"`
}

type setupResponse struct {
	Barangay  barangayResponse  `json:"barangay"`
	Household householdResponse `json:"household"`
	Resident  residentResponse  `json:"resident"`
	User      userResponse      `json:"user"`
}

type setupStatusResponse struct {
	Completed bool `json:"completed"`
}

func (h *Handlers) SetupStatus(w http.ResponseWriter, r *http.Request) {
	done, err := h.Setup.Completed(r.Context())
	if err != nil {
		h.respondError(w, "setup.status", err)
		return
	}
	writeJSON(w, http.StatusOK, setupStatusResponse{Completed: done})
}

func (h *Handlers) RunSetup(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	residentInput, err := req.Resident.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_of_birth must be YYYY-MM-DD")
		return
	}

	result, err := h.Setup.Run(r.Context(), setupdomain.Input{
		Barangay: barangaydomain.Input{
			Name:    req.Barangay.Name,
			History: req.Barangay.History,
			Mission: req.Barangay.Mission,
			Vision:  req.Barangay.Vision,
		},
		Household: req.Household.toInput(),
		Resident:  residentInput,
		User:      req.User.toInput(),
	})
	if err != nil {
		h.respondError(w, "setup.run", err)
		return
	}

	writeJSON(w, http.StatusCreated, setupResponse{
		Barangay:  toBarangayResponse(result.Barangay),
		Household: toHouseholdResponse(result.Household),
		Resident:  toResidentResponse(result.Resident),
		User:      toUserResponse(result.User),
	})
}
