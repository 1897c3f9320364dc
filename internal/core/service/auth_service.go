package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/exalt/teamboard/internal/core/domain"
	"github.com/exalt/teamboard/internal/core/ports"
)

// AuthService implements the signup, signin and refresh flows.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	hasher   *PasswordHasher
	throttle ports.SigninThrottle // nil disables throttling
	audit    ports.AuditRecorder  // nil disables the audit trail
	log      zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.TokenService,
	hasher *PasswordHasher,
	throttle ports.SigninThrottle,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		hasher:   hasher,
		throttle: throttle,
		audit:    audit,
		log:      log,
	}
}

// Signup registers a new account with the default TeamMember role.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		s.record(in.Email, domain.AuditSignup, domain.AuditDenied)
		return nil, domain.ErrEmailAlreadyUsed
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    in.FirstName,
		SecondName:   in.SecondName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleTeamMember,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The unique index on email closes the race between the existence
	// check above and this write.
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(created.Email, domain.AuditSignup, domain.AuditSuccess)
	s.log.Info().Str("email", created.Email).Msg("user signed up")
	return created, nil
}

// Signin verifies credentials and returns an access/refresh token pair.
// A missing account and a wrong password are indistinguishable to the
// caller: both surface as domain.ErrInvalidCredentials.
func (s *AuthService) Signin(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	if s.throttled(ctx, email) {
		s.record(email, domain.AuditSignin, domain.AuditDenied)
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, s.signinDenied(ctx, email)
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, s.signinDenied(ctx, email)
	}

	token, err := s.tokens.IssueAccessToken(user.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(user.Email, nil)
	if err != nil {
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to reset signin throttle")
		}
	}

	s.record(email, domain.AuditSignin, domain.AuditSuccess)
	s.log.Info().Str("email", email).Msg("user signed in")
	return &ports.TokenPair{Token: token, RefreshToken: refresh}, nil
}

// Refresh validates a refresh token and issues a fresh access token paired
// with the same refresh token. Refresh tokens are not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	subject, err := s.tokens.ExtractSubject(refreshToken)
	if err != nil {
		s.record("", domain.AuditRefresh, domain.AuditDenied)
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		return nil, err
	}

	if !s.tokens.IsValid(refreshToken, user.Email) {
		s.record(user.Email, domain.AuditRefresh, domain.AuditDenied)
		return nil, domain.ErrRefreshRejected
	}

	token, err := s.tokens.IssueAccessToken(user.Email)
	if err != nil {
		return nil, err
	}

	s.record(user.Email, domain.AuditRefresh, domain.AuditSuccess)
	return &ports.TokenPair{Token: token, RefreshToken: refreshToken}, nil
}

// throttled is fail-open: a broken throttle store must not lock everyone out.
func (s *AuthService) throttled(ctx context.Context, email string) bool {
	if s.throttle == nil {
		return false
	}
	tooMany, err := s.throttle.TooMany(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("throttle check failed, allowing signin")
		return false
	}
	return tooMany
}

func (s *AuthService) signinDenied(ctx context.Context, email string) error {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, email); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to record signin failure")
		}
	}
	s.record(email, domain.AuditSignin, domain.AuditDenied)
	return domain.ErrInvalidCredentials
}

func (s *AuthService) record(actor string, action domain.AuditAction, outcome domain.AuditOutcome) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Actor:     actor,
		Action:    action,
		Outcome:   outcome,
		Timestamp: time.Now().UTC(),
	})
}
