// Package handler contains the HTTP layer: request parsing, struct-tag
// validation of request bodies, and translation of service results into
// JSON responses. Handlers never touch the database directly — each one
// owns a service and delegates all business decisions to it.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sakif/octofit-tracker/internal/repository"
	"github.com/sakif/octofit-tracker/internal/service"
)

// UserHandler manages CRUD operations for user accounts.
type UserHandler struct {
	svc      *service.UserService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewUserHandler(svc *service.UserService, validate *validator.Validate, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, validate: validate, logger: logger}
}

// createUserRequest is the writable field set for POST /api/users.
// The validate tags are the first line of defence; the service layer
// re-checks business rules (email uniqueness) the tags can't express.
type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest uses pointer fields so a partial body works on PUT and
// PATCH alike: nil means "leave unchanged", a present value is validated
// the same way as on create.
type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=1"`
}

// HandleList returns all users.
//
// HTTP: GET /api/users[?username=&email=]
// The query parameters are the admin search capability — substring matches.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := repository.UserFilter{
		Username: r.URL.Query().Get("username"),
		Email:    r.URL.Query().Get("email"),
	}

	users, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// HandleCreate stores a new user.
//
// HTTP: POST /api/users
// REQUEST BODY: {"username": "ironman", "email": "tony@avengers.com", "password": "..."}
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.svc.Create(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// HandleGetByID returns a single user.
//
// HTTP: GET /api/users/{id}
func (h *UserHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleUpdate applies a full or partial field set to an existing user.
//
// HTTP: PUT/PATCH /api/users/{id}
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.svc.Update(r.Context(), r.PathValue("id"), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleDelete removes a user and cascades to their activities and
// team memberships.
//
// HTTP: DELETE /api/users/{id}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent) // 204 — successful deletion, no body
}
