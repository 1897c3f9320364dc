package service

import (
	"context"
	"time"

	"github.com/exalt/teamboard/internal/core/domain"
	"github.com/exalt/teamboard/internal/core/ports"
)

// UserService implements account administration. Access control lives at
// the route layer; the service itself trusts its caller.
type UserService struct {
	users  ports.UserRepository
	hasher *PasswordHasher
}

func NewUserService(users ports.UserRepository, hasher *PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Create adds an account with an explicit role, unlike signup which always
// assigns TeamMember.
func (s *UserService) Create(ctx context.Context, in ports.UserInput) (*domain.User, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.users.Create(ctx, &domain.User{
		FirstName:    in.FirstName,
		SecondName:   in.SecondName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Update replaces the mutable fields of the account identified by email.
// An empty password keeps the stored hash.
func (s *UserService) Update(ctx context.Context, email string, in ports.UserInput) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	user.FirstName = in.FirstName
	user.SecondName = in.SecondName
	user.Role = role
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	return s.users.Update(ctx, email, user)
}

// UpdateRole reassigns the user's role. Rejects names outside the closed set.
func (s *UserService) UpdateRole(ctx context.Context, email, role string) (*domain.User, error) {
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.Role = parsed
	user.UpdatedAt = time.Now().UTC()
	return s.users.Update(ctx, email, user)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) DeleteByEmail(ctx context.Context, email string) error {
	return s.users.DeleteByEmail(ctx, email)
}
