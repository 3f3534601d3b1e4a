package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sakif/octofit-tracker/internal/repository"
	"github.com/sakif/octofit-tracker/internal/service"
)

// ActivityHandler manages CRUD operations for logged activities.
type ActivityHandler struct {
	svc      *service.ActivityService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewActivityHandler(svc *service.ActivityService, validate *validator.Validate, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, validate: validate, logger: logger}
}

// createActivityRequest mirrors the writable fields. The oneof tag carries
// the closed activity_type set; the service repeats the check so non-HTTP
// callers get it too.
type createActivityRequest struct {
	UserID       string  `json:"user" validate:"required"`
	ActivityType string  `json:"activity_type" validate:"required,oneof=running cycling swimming weightlifting yoga hiking"`
	Duration     float64 `json:"duration" validate:"gte=0"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
}

type updateActivityRequest struct {
	UserID       *string  `json:"user" validate:"omitempty,min=1"`
	ActivityType *string  `json:"activity_type" validate:"omitempty,oneof=running cycling swimming weightlifting yoga hiking"`
	Duration     *float64 `json:"duration" validate:"omitempty,gte=0"`
	Date         *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// HandleList returns all activities.
//
// HTTP: GET /api/activities[?user=&activity_type=&date=]
// The query parameters are the admin filter capability — exact matches.
func (h *ActivityHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := repository.ActivityFilter{
		UserID:       r.URL.Query().Get("user"),
		ActivityType: r.URL.Query().Get("activity_type"),
		Date:         r.URL.Query().Get("date"),
	}

	activities, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, activities)
}

// HandleCreate stores a new activity.
//
// HTTP: POST /api/activities
// REQUEST BODY: {"user": "<id>", "activity_type": "running", "duration": 30, "date": "2026-02-01"}
func (h *ActivityHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, err)
		return
	}

	activity, err := h.svc.Create(r.Context(), req.UserID, req.ActivityType, req.Duration, req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, activity)
}

// HandleGetByID returns a single activity.
//
// HTTP: GET /api/activities/{id}
func (h *ActivityHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	activity, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, activity)
}

// HandleUpdate applies a full or partial field set to an existing activity.
//
// HTTP: PUT/PATCH /api/activities/{id}
func (h *ActivityHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, err)
		return
	}

	activity, err := h.svc.Update(r.Context(), r.PathValue("id"), req.UserID, req.ActivityType, req.Duration, req.Date)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, activity)
}

// HandleDelete removes an activity.
//
// HTTP: DELETE /api/activities/{id}
func (h *ActivityHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
