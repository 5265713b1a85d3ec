package domain

import "time"

// User models a registered account. PasswordHash never leaves the process:
// it is excluded from JSON and only compared inside the auth service.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
