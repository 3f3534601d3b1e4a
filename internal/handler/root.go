package handler

import (
	"net/http"
)

// RootHandler serves the API discovery endpoint: a mapping of each resource
// collection's name to its path, so clients can locate the collections
// without hard-coding URLs.
type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot enumerates the five resource collections.
//
// HTTP: GET /api
// RESPONSE: {"activities":"/api/activities","leaderboard":"/api/leaderboard",...}
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"users":       "/api/users",
		"teams":       "/api/teams",
		"activities":  "/api/activities",
		"leaderboard": "/api/leaderboard",
		"workouts":    "/api/workouts",
	})
}
