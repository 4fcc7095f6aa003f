package handler

import (
	"net/http"
	"time"

	userdomain "barangay-records-go/internal/domain/user"
	"barangay-records-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type userRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Position        string `json:"position"`
	ResidentID      string `json:"resident_id"`
}

type userResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Position     string    `json:"position"`
	ResidentID   string    `json:"resident_id"`
	ResidentName string    `json:"resident_name"`
	DateAdded    time.Time `json:"date_added"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(record *userdomain.User) userResponse {
	return userResponse{
		ID:           record.ID,
		Username:     record.Username,
		Position:     record.Position,
		ResidentID:   record.ResidentID,
		ResidentName: record.Resident.FullName(),
		DateAdded:    record.DateAdded,
	}
}

func (req userRequest) toInput() userdomain.Input {
	return userdomain.Input{
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Position:        req.Position,
		ResidentID:      req.ResidentID,
	}
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	record, err := h.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(w, "auth.login", err)
		return
	}

	token, err := h.auth.Sign(middleware.User{
		ID:       record.ID,
		Username: record.Username,
		Position: record.Position,
	})
	if err != nil {
		h.respondError(w, "auth.login", err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: toUserResponse(record)})
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	records, err := h.Users.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondError(w, "users.list", err)
		return
	}

	rows := make([]userResponse, 0, len(records))
	for i := range records {
		rows = append(rows, toUserResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	record, err := h.Users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, "users.get", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(record))
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	record, err := h.Users.Create(r.Context(), req.toInput())
	if err != nil {
		h.respondError(w, "users.create", err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(record))
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	record, err := h.Users.Update(r.Context(), chi.URLParam(r, "id"), req.toInput())
	if err != nil {
		h.respondError(w, "users.update", err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(record))
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, "users.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
