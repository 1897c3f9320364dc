package ports

import (
	"context"

	"github.com/exalt/teamboard/internal/core/domain"
)

// UserInput is the administrative DTO for creating or updating accounts.
// Role is the role name; an empty Password on update leaves the stored
// hash untouched.
type UserInput struct {
	FirstName  string
	SecondName string
	Email      string
	Password   string
	Role       string
}

// UserService provides the CEO-facing account administration operations.
type UserService interface {
	Create(ctx context.Context, in UserInput) (*domain.User, error)
	Update(ctx context.Context, email string, in UserInput) (*domain.User, error)
	UpdateRole(ctx context.Context, email, role string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	DeleteByEmail(ctx context.Context, email string) error
}
