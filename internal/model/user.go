// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// User represents a registered account in the fitness tracker.
//
// The `json:"..."` tags control the wire representation. We use snake_case
// field names because that is the API contract the frontend was built against.
//
// WHY Password AS A PLAIN string?
// This app has no authentication flow — the password is an opaque string
// stored and returned as-is. There is deliberately no hashing or verification
// logic anywhere in the codebase.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"` // Globally unique across all users
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
