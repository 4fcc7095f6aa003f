package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"barangay-records-go/pkg/outcome"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// respondError translates a service error into the wire status: rule
// violations are 422, missing records 404, failed logins 401, anything
// else 500.
func (h *Handlers) respondError(w http.ResponseWriter, op string, err error) {
	if reason, ok := outcome.IsValidation(err); ok {
		h.log.BusinessError(op+": rejected", err)
		writeError(w, http.StatusUnprocessableEntity, "validation_failed", reason)
		return
	}
	if errors.Is(err, outcome.ErrNotFound) {
		h.log.BusinessError(op+": record not found", err)
		writeError(w, http.StatusNotFound, "not_found", "record not found")
		return
	}
	if errors.Is(err, outcome.ErrInvalidCredentials) {
		h.log.BusinessError(op+": invalid credentials", err)
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password")
		return
	}

	h.log.InternalError(op+": failed", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
