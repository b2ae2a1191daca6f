// Package id generates record identifiers.
package id

import "github.com/google/uuid"

// New returns a fresh identifier for a transaction, goal, or user.
func New() string {
	return uuid.NewString()
}
