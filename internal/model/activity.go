package model

import "time"

// ActivityTypes is the closed set of permitted activity_type values.
// Anything outside this list is rejected at validation time.
const ActivityTypes = "running cycling swimming weightlifting yoga hiking"

// Activity is a single workout session logged by a user.
//
// UserID is the required owner reference — an activity cannot exist without
// its user, and deleting the user deletes all of their activities.
//
// Date is a calendar date in YYYY-MM-DD form with no time component. We keep
// it as a string (rather than time.Time) because attaching a timezone to a
// bare calendar date invites off-by-one-day bugs.
type Activity struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user"`
	ActivityType string    `json:"activity_type"`
	Duration     float64   `json:"duration"` // Minutes, non-negative
	Date         string    `json:"date"`     // YYYY-MM-DD
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
