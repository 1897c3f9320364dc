package handler

import "github.com/exalt/teamboard/internal/core/domain"

type signupRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=50"`
	SecondName string `json:"second_name" validate:"required,max=50"`
	Email      string `json:"email" validate:"required,email,max=100"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	Token string `json:"token" validate:"required"`
}

type tokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// userResponse is the outward projection of an account. It deliberately
// carries no credential material.
type userResponse struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		SecondName: u.SecondName,
		Email:      u.Email,
		Role:       string(u.Role),
	}
}
