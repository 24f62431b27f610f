package domain

import (
	"errors"
	"time"
)

// Role is the closed set of access levels an account can hold.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

var ErrDuplicateUsername = errors.New("username already exists")
var ErrDuplicateEmail = errors.New("email already exists")
var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")

// Account models a registered user of the system.
//
// Username is set once at registration and never mutated; Email and
// FullName change only through profile updates. PasswordHash never leaves
// the service layer — external callers see a Summary instead.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Summary is the externally-safe projection of an Account. It carries no
// credential material at all.
type Summary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// Summarize maps an Account to its external projection.
func (a *Account) Summarize() *Summary {
	return &Summary{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		FullName: a.FullName,
		Role:     a.Role,
	}
}
