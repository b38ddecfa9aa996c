package model

import "time"

// User is an account that may list venues, artists and shows.  Only the
// bcrypt hash of the password is persisted.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email (stored lower-cased)
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}
