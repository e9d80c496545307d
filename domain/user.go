package domain

import "time"

// Identity is the stable caller identity as seen by the transport.
type Identity struct {
	ExternalID string `validate:"required,max=64"`
	FirstName  string `validate:"max=256"`
	Username   string `validate:"max=256"`
}

// User is created lazily on the first interaction that needs persistence
// and is never mutated afterward.
type User struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id"`
	FirstName  string    `json:"first_name"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"created_at"`
}
