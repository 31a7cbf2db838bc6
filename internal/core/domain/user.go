package domain

import (
	"errors"
	"time"
)

// RoleAdmin is the only role the system distinguishes. Role is otherwise a
// free-form string stored as provided at registration.
const RoleAdmin = "admin"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")

// User models a registered account. PasswordHash is the bcrypt digest of the
// password; the plaintext is never stored.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	Role         string    `json:"role"`
	PhoneNumber  string    `json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
