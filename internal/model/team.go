package model

import "time"

// Team groups users together. Membership is a pure many-to-many relation:
// a user may belong to any number of teams and a team may have any number of
// members. Members serializes as the list of member user IDs.
//
// Adding an already-present member is a no-op — the membership set never
// contains duplicates.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
