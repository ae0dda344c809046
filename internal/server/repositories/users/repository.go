// Package users contains the user store: the repository interface consumed
// by services and its Postgres implementation.
package users

import (
	"context"

	"github.com/fittrackhq/fittrack/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	SetAvatar(ctx context.Context, userID, key string) error
}
