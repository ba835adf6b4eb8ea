// Package session resolves who is using the device and whether onboarding
// has been completed. The root router consumes it as an opaque push-based
// source: subscribe once, receive a snapshot per change, never poll.
package session

import "github.com/google/uuid"

// User is the signed-in profile.
type User struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Snapshot is one observation of session state. Loading is true only before
// the first resolution completes; after that exactly one of the derived
// branches (onboarding, login, authenticated) applies.
type Snapshot struct {
	Loading   bool
	Onboarded bool
	User      *User
}

// Authenticated reports whether a user is present on a resolved snapshot.
func (s Snapshot) Authenticated() bool {
	return !s.Loading && s.Onboarded && s.User != nil
}
