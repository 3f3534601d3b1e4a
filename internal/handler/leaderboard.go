package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sakif/octofit-tracker/internal/repository"
	"github.com/sakif/octofit-tracker/internal/service"
)

// LeaderboardHandler manages CRUD operations for leaderboard entries.
type LeaderboardHandler struct {
	svc      *service.LeaderboardService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewLeaderboardHandler(svc *service.LeaderboardService, validate *validator.Validate, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc, validate: validate, logger: logger}
}

// createLeaderboardRequest: score is optional and defaults to 0 — the zero
// value passes gte=0 without a pointer dance.
type createLeaderboardRequest struct {
	TeamID string  `json:"team" validate:"required"`
	Score  float64 `json:"score" validate:"gte=0"`
}

type updateLeaderboardRequest struct {
	TeamID *string  `json:"team" validate:"omitempty,min=1"`
	Score  *float64 `json:"score" validate:"omitempty,gte=0"`
}

// HandleList returns all leaderboard entries.
//
// HTTP: GET /api/leaderboard[?team=&ordering=-score]
// `ordering=-score` switches to score descending — the admin ranking view.
func (h *LeaderboardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := repository.LeaderboardFilter{
		TeamID:       r.URL.Query().Get("team"),
		OrderByScore: r.URL.Query().Get("ordering") == "-score",
	}

	entries, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// HandleCreate stores a new leaderboard entry.
//
// HTTP: POST /api/leaderboard
// REQUEST BODY: {"team": "<id>", "score": 4850}
func (h *LeaderboardHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createLeaderboardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.svc.Create(r.Context(), req.TeamID, req.Score)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// HandleGetByID returns a single leaderboard entry.
//
// HTTP: GET /api/leaderboard/{id}
func (h *LeaderboardHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// HandleUpdate applies a full or partial field set to an existing entry.
//
// HTTP: PUT/PATCH /api/leaderboard/{id}
func (h *LeaderboardHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateLeaderboardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, err)
		return
	}

	entry, err := h.svc.Update(r.Context(), r.PathValue("id"), req.TeamID, req.Score)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// HandleDelete removes a leaderboard entry.
//
// HTTP: DELETE /api/leaderboard/{id}
func (h *LeaderboardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
