package user

import "time"

// User represents a row in the users table. PasswordHash never leaves the
// server; response structs in the handler layer pick the public fields.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
