package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authority levels a user can hold.
// CEO outranks TeamLeader outranks TeamMember, but no numeric ordering is
// relied on anywhere: every protected route names its allowed roles
// explicitly.
type Role string

const (
	RoleCEO        Role = "CEO"
	RoleTeamLeader Role = "TeamLeader"
	RoleTeamMember Role = "TeamMember"
)

var (
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("invalid role")
	ErrTokenInvalid       = errors.New("token malformed or unsigned")
	ErrRefreshRejected    = errors.New("refresh token rejected")
	ErrTooManyAttempts    = errors.New("too many signin attempts")
)

// ParseRole converts a role name into a Role, rejecting anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCEO, RoleTeamLeader, RoleTeamMember:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User models an account in the system. The email doubles as the login
// identifier and the JWT subject. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	SecondName   string    `json:"second_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Authority returns the role name as used for route-level access checks.
func (u *User) Authority() string {
	return string(u.Role)
}
