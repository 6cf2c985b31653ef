// Package domain contains core concepts of the chat store.
// This file defines User records and their canonical-identity rule.
// No runtime, network, or UI logic should be added here.
package domain

// User is a participant as embedded inside a Chat. Users are not stored
// independently: every Chat carries full copies, and the canonical record
// for an id is whichever copy the registry saw first at load time.
// Name is immutable after creation; no update operation exists.
type User struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}
