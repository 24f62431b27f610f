package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/userportal/account-system/internal/core/domain"
	"github.com/userportal/account-system/internal/core/ports"
)

// Seeder provisions the default accounts at startup. It is the only path
// that creates an admin account; self-registration always yields role user.
type Seeder struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewSeeder(repo ports.AccountRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{repo: repo, logger: logger}
}

type seedAccount struct {
	username string
	email    string
	password string
	fullName string
	role     domain.Role
}

var defaultSeeds = []seedAccount{
	{username: "admin", email: "admin@example.com", password: "admin123", fullName: "Admin User", role: domain.RoleAdmin},
	{username: "user", email: "user@example.com", password: "user123", fullName: "Regular User", role: domain.RoleUser},
}

// Run creates each default account unless its username is already taken.
// Safe to run on every startup.
func (s *Seeder) Run(ctx context.Context) error {
	for _, seed := range defaultSeeds {
		if err := s.ensure(ctx, seed); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) ensure(ctx context.Context, seed seedAccount) error {
	if !seed.role.Valid() {
		return domain.ErrInvalidRole
	}

	exists, err := s.repo.ExistsByUsername(ctx, seed.username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.repo.Save(ctx, &domain.Account{
		Username:     seed.username,
		Email:        seed.email,
		PasswordHash: string(hash),
		FullName:     seed.fullName,
		Role:         seed.role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// Another instance may have seeded the same account between the
		// exists-check and the insert.
		if errors.Is(err, domain.ErrDuplicateUsername) || errors.Is(err, domain.ErrDuplicateEmail) {
			return nil
		}
		return err
	}

	s.logger.Info().Str("username", seed.username).Str("role", string(seed.role)).Msg("seed account created")
	return nil
}
