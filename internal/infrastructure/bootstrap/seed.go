// Package bootstrap performs one-time startup provisioning.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/exalt/teamboard/internal/core/domain"
	"github.com/exalt/teamboard/internal/core/ports"
	"github.com/exalt/teamboard/internal/core/service"
	"github.com/exalt/teamboard/internal/infrastructure/config"
)

// EnsureCEO creates the seed CEO account when no CEO exists yet.
// The check-then-create makes reboots idempotent; a concurrent duplicate
// insert is absorbed by the unique email index.
func EnsureCEO(ctx context.Context, users ports.UserRepository, hasher *service.PasswordHasher, cfg config.CEOConfig, log zerolog.Logger) error {
	if cfg.Password == "" {
		log.Warn().Msg("CEO_PASSWORD not set, skipping CEO bootstrap")
		return nil
	}

	if _, err := users.FindByRole(ctx, domain.RoleCEO); err == nil {
		log.Debug().Msg("CEO account already present")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("bootstrap: lookup CEO: %w", err)
	}

	hash, err := hasher.Hash(cfg.Password)
	if err != nil {
		return fmt.Errorf("bootstrap: hash CEO password: %w", err)
	}

	now := time.Now().UTC()
	_, err = users.Create(ctx, &domain.User{
		FirstName:    cfg.FirstName,
		SecondName:   cfg.SecondName,
		Email:        cfg.Email,
		PasswordHash: hash,
		Role:         domain.RoleCEO,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyUsed) {
			return nil
		}
		return fmt.Errorf("bootstrap: create CEO: %w", err)
	}

	log.Info().Str("email", cfg.Email).Msg("seed CEO account created")
	return nil
}
