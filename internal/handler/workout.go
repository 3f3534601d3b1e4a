package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sakif/octofit-tracker/internal/repository"
	"github.com/sakif/octofit-tracker/internal/service"
)

// WorkoutHandler manages CRUD operations for suggested workouts.
type WorkoutHandler struct {
	svc      *service.WorkoutService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewWorkoutHandler(svc *service.WorkoutService, validate *validator.Validate, logger *slog.Logger) *WorkoutHandler {
	return &WorkoutHandler{svc: svc, validate: validate, logger: logger}
}

type createWorkoutRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration" validate:"gte=0"`
}

type updateWorkoutRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Duration    *float64 `json:"duration" validate:"omitempty,gte=0"`
}

// HandleList returns all workouts.
//
// HTTP: GET /api/workouts[?name=]
func (h *WorkoutHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := repository.WorkoutFilter{
		Name: r.URL.Query().Get("name"),
	}

	workouts, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workouts)
}

// HandleCreate stores a new workout.
//
// HTTP: POST /api/workouts
// REQUEST BODY: {"name": "Iron Man HIIT", "description": "...", "duration": 45}
func (h *WorkoutHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createWorkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, err)
		return
	}

	workout, err := h.svc.Create(r.Context(), req.Name, req.Description, req.Duration)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, workout)
}

// HandleGetByID returns a single workout.
//
// HTTP: GET /api/workouts/{id}
func (h *WorkoutHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	workout, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workout)
}

// HandleUpdate applies a full or partial field set to an existing workout.
//
// HTTP: PUT/PATCH /api/workouts/{id}
func (h *WorkoutHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateWorkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, err)
		return
	}

	workout, err := h.svc.Update(r.Context(), r.PathValue("id"), req.Name, req.Description, req.Duration)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, workout)
}

// HandleDelete removes a workout.
//
// HTTP: DELETE /api/workouts/{id}
func (h *WorkoutHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
