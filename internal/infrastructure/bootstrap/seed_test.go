package bootstrap

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/exalt/teamboard/internal/core/domain"
	"github.com/exalt/teamboard/internal/core/service"
	"github.com/exalt/teamboard/internal/infrastructure/config"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByRole(_ context.Context, role domain.Role) (*domain.User, error) {
	for _, u := range r.users {
		if u.Role == role {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailAlreadyUsed
	}
	r.users[user.Email] = user
	return user, nil
}

func (r *stubUserRepo) Update(_ context.Context, email string, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[email]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.Email] = user
	return user, nil
}

func (r *stubUserRepo) DeleteByEmail(_ context.Context, email string) error {
	if _, ok := r.users[email]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, email)
	return nil
}

func ceoConfig() config.CEOConfig {
	return config.CEOConfig{
		Email:      "ceo@teamboard.local",
		Password:   "chief-pass",
		FirstName:  "Maria",
		SecondName: "Sammour",
	}
}

func TestEnsureCEO_CreatesAccount(t *testing.T) {
	repo := newStubUserRepo()

	if err := EnsureCEO(context.Background(), repo, service.NewPasswordHasher(), ceoConfig(), zerolog.Nop()); err != nil {
		t.Fatalf("EnsureCEO failed: %v", err)
	}

	ceo, err := repo.FindByRole(context.Background(), domain.RoleCEO)
	if err != nil {
		t.Fatalf("expected seeded CEO: %v", err)
	}
	if ceo.Email != "ceo@teamboard.local" {
		t.Fatalf("unexpected email: %s", ceo.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ceo.PasswordHash), []byte("chief-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestEnsureCEO_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	hasher := service.NewPasswordHasher()

	if err := EnsureCEO(context.Background(), repo, hasher, ceoConfig(), zerolog.Nop()); err != nil {
		t.Fatalf("first EnsureCEO failed: %v", err)
	}
	if err := EnsureCEO(context.Background(), repo, hasher, ceoConfig(), zerolog.Nop()); err != nil {
		t.Fatalf("second EnsureCEO failed: %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected one account, got %d", len(repo.users))
	}
}

func TestEnsureCEO_SkipsWithoutPassword(t *testing.T) {
	repo := newStubUserRepo()
	cfg := ceoConfig()
	cfg.Password = ""

	if err := EnsureCEO(context.Background(), repo, service.NewPasswordHasher(), cfg, zerolog.Nop()); err != nil {
		t.Fatalf("EnsureCEO failed: %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected no accounts, got %d", len(repo.users))
	}
}

func TestEnsureCEO_SkipsWhenCEOExists(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["boss@example.com"] = &domain.User{Email: "boss@example.com", Role: domain.RoleCEO}

	if err := EnsureCEO(context.Background(), repo, service.NewPasswordHasher(), ceoConfig(), zerolog.Nop()); err != nil {
		t.Fatalf("EnsureCEO failed: %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected the existing account only, got %d", len(repo.users))
	}
}
