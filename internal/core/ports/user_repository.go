package ports

import (
	"context"

	"github.com/exalt/teamboard/internal/core/domain"
)

// UserRepository is the persistence boundary for user accounts.
// Email uniqueness is the store's responsibility (unique index), which
// closes the race between the existence check and the write during signup.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, email string, user *domain.User) (*domain.User, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// PrincipalLookup is the narrow read-only view of the user store the
// authorization gate needs: resolve a token subject to an account.
type PrincipalLookup interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
