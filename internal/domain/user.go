// Package domain defines the core entities of the library catalogue.
package domain

import "time"

// Role represents the user's access tier in the system.
type Role string

const (
	// RoleAdmin grants full catalogue mutation rights.
	RoleAdmin Role = "admin"
	// RoleStudent grants read-only catalogue access.
	RoleStudent Role = "student"
)

// ParseRole maps a requested role string to a Role.
// Only the literal string "admin" yields RoleAdmin; everything else,
// including the empty string, defaults to RoleStudent.
func ParseRole(requested string) Role {
	if requested == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleStudent
}

// User represents a registered account in the catalogue.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialized outward
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin returns true if the user has administrative privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
