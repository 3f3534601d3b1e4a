package model

import "time"

// Workout is a suggested workout plan. It stands alone — no relations to
// users, teams, or activities.
type Workout struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"` // Minutes, non-negative
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
