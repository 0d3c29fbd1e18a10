package domain

import "time"

// User represents a registered account. Email and username are each unique
// across the system.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
