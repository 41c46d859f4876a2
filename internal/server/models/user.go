// Package models contains the server-side record types persisted by the
// repositories.
package models

import "time"

// User is a registered identity. PasswordHash is a self-contained bcrypt
// digest and must never appear in API responses or logs.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
