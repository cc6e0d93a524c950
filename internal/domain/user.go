package domain

import "time"

// UserRole enumerates system user roles.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// SystemUser models an office staff account. Its lifecycle is independent
// from case records; the registry also feeds assignee choices.
type SystemUser struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
