package model

import "time"

// User is a registered account. Fields never change after registration;
// the ID namespaces every ledger key the user owns in the store.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
