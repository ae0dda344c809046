// Package goals contains the fitness-goals store backing the dashboard.
package goals

import (
	"context"

	"github.com/fittrackhq/fittrack/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, g *models.Goals) error
	GetByUserID(ctx context.Context, userID string) (*models.Goals, error)
	Update(ctx context.Context, g *models.Goals) error
}
