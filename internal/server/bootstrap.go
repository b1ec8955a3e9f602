package server

import (
	"context"

	"github.com/goliatone/go-errors"

	"github.com/taha-arar/blog/internal/auth"
	"github.com/taha-arar/blog/internal/model"
	"github.com/taha-arar/blog/internal/repository"
)

// SeedSuperadmin makes sure the configured superadmin account exists.
// Ran once at startup, it is a no-op when the account is already there.
func SeedSuperadmin(ctx context.Context, users repository.Users, email, password string, logger auth.Logger) error {
	exists, err := users.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to check for superadmin")
	}
	if exists {
		logger.Debug("superadmin already present", "email", email)
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, &model.User{
		FirstName:    "Super",
		LastName:     "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleSuperAdmin,
		IsActive:     true,
	})
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to seed superadmin")
	}

	logger.Info("superadmin account created", "email", email)
	return nil
}
