// Package model defines domain entities for the application.
package model

import "time"

// User represents an account that owns inventory items.
// PasswordHash is excluded from JSON serialization and is only
// populated by credential lookups.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
