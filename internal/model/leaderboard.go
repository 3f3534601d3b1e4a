package model

import "time"

// LeaderboardEntry records a team's score on the leaderboard.
//
// Score is a stored value set directly by the caller — it is NOT derived from
// activities. It defaults to 0 when unspecified. TeamID is a required owner
// reference; deleting the team deletes its leaderboard entries.
type LeaderboardEntry struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
