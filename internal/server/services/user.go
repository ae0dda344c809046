// Package services contains server-side business logic. This file implements
// UserService: credential authentication against the user store and
// server-side registration.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fittrackhq/fittrack/internal/common"
	"github.com/fittrackhq/fittrack/internal/dbx"
	"github.com/fittrackhq/fittrack/internal/server/auth"
	"github.com/fittrackhq/fittrack/internal/server/models"
	"github.com/fittrackhq/fittrack/internal/server/repositories/repomanager"
	"github.com/fittrackhq/fittrack/internal/validate"
)

// RegisterParams is the sign-up input. Confirmation and names are
// re-validated here regardless of what the client already checked.
type RegisterParams struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// UserService handles authentication and registration.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
}

// NewUserService constructs a UserService using repositories and a hasher.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
	}
}

// Authenticate verifies email/password against the user store.
//
// The attempt performs exactly one store read and one hash comparison, in
// that order, with no retries. Failures are typed: ErrMissingCredentials,
// ErrUserNotFound, ErrInvalidPassword, or ErrorInternal for collaborator
// failures. The returned user has the password hash stripped.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, common.ErrMissingCredentials
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		return nil, common.ErrInvalidPassword
	}

	user.PasswordHash = ""
	return user, nil
}

// Register creates a user and their default goals in one transaction.
// Validation runs server-side even when the client already validated.
func (s *UserService) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	if errs := validate.Registration(p.Email, p.Password, p.ConfirmPassword, p.FirstName, p.LastName); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(errs, "; "))
	}

	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	firstName := strings.TrimSpace(p.FirstName)
	lastName := strings.TrimSpace(p.LastName)

	user := &models.User{
		Email:        p.Email,
		FirstName:    &firstName,
		LastName:     &lastName,
		PasswordHash: hash,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}
		return s.repomanager.Goals(tx).Create(ctx, models.DefaultGoals(created.ID))
	}); err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	user.PasswordHash = ""
	return user, nil
}
