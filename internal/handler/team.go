package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sakif/octofit-tracker/internal/repository"
	"github.com/sakif/octofit-tracker/internal/service"
)

// TeamHandler manages CRUD operations for teams, including editing the
// membership set.
type TeamHandler struct {
	svc      *service.TeamService
	validate *validator.Validate
	logger   *slog.Logger
}

func NewTeamHandler(svc *service.TeamService, validate *validator.Validate, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{svc: svc, validate: validate, logger: logger}
}

type createTeamRequest struct {
	Name    string   `json:"name" validate:"required"`
	Members []string `json:"members"`
}

// updateTeamRequest: a present members list REPLACES the membership set
// (an empty list clears it); an absent one leaves it untouched.
type updateTeamRequest struct {
	Name    *string   `json:"name" validate:"omitempty,min=1"`
	Members *[]string `json:"members"`
}

// HandleList returns all teams with their member IDs.
//
// HTTP: GET /api/teams[?name=]
func (h *TeamHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := repository.TeamFilter{
		Name: r.URL.Query().Get("name"),
	}

	teams, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, teams)
}

// HandleCreate stores a new team.
//
// HTTP: POST /api/teams
// REQUEST BODY: {"name": "Team Marvel", "members": ["<user id>", ...]}
func (h *TeamHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, err)
		return
	}

	team, err := h.svc.Create(r.Context(), req.Name, req.Members)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, team)
}

// HandleGetByID returns a single team.
//
// HTTP: GET /api/teams/{id}
func (h *TeamHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	team, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, team)
}

// HandleUpdate applies a full or partial field set to an existing team.
//
// HTTP: PUT/PATCH /api/teams/{id}
func (h *TeamHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validateStruct(h.validate, req); err != nil {
		writeError(w, err)
		return
	}

	team, err := h.svc.Update(r.Context(), r.PathValue("id"), req.Name, req.Members)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, team)
}

// HandleDelete removes a team and cascades to its leaderboard entries.
// Member users survive.
//
// HTTP: DELETE /api/teams/{id}
func (h *TeamHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
