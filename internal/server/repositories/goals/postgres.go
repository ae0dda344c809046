package goals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fittrackhq/fittrack/internal/common"
	"github.com/fittrackhq/fittrack/internal/dbx"
	"github.com/fittrackhq/fittrack/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, g *models.Goals) error {

	query :=
		`INSERT INTO goals (user_id, current_weight, target_weight, calorie_goal)
		 VALUES ($1, $2, $3, $4)
		 `

	_, err := r.db.ExecContext(ctx, query,
		g.UserID, g.CurrentWeight, g.TargetWeight, g.CalorieGoal)

	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}

	return nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID string) (*models.Goals, error) {
	query :=
		`SELECT user_id, current_weight, target_weight, calorie_goal, updated_at FROM goals
		 WHERE user_id = $1
		 `

	g := &models.Goals{}
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&g.UserID, &g.CurrentWeight, &g.TargetWeight, &g.CalorieGoal, &g.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %v", err)
	}

	return g, nil
}

func (r *PostgresRepository) Update(ctx context.Context, g *models.Goals) error {
	query :=
		`UPDATE goals
		 SET current_weight = $2, target_weight = $3, calorie_goal = $4, updated_at = now()
		 WHERE user_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		g.UserID, g.CurrentWeight, g.TargetWeight, g.CalorieGoal)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
