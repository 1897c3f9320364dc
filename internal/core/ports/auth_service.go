package ports

import (
	"context"

	"github.com/exalt/teamboard/internal/core/domain"
)

// TokenPair carries the credentials returned by signin and refresh.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// SignupInput is the DTO passed from the transport layer to AuthService.
type SignupInput struct {
	FirstName  string
	SecondName string
	Email      string
	Password   string
}

// AuthService orchestrates the three authentication flows.
type AuthService interface {
	// Signup registers a new TeamMember account. Fails with
	// domain.ErrEmailAlreadyUsed when the email is taken.
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	// Signin verifies credentials and issues an access/refresh pair.
	// Failures collapse into domain.ErrInvalidCredentials so responses
	// never reveal whether the email exists.
	Signin(ctx context.Context, email, password string) (*TokenPair, error)
	// Refresh exchanges a valid refresh token for a new access token.
	// The refresh token itself is returned unchanged (no rotation).
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
