package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fittrackhq/fittrack/internal/dbx"
	"github.com/fittrackhq/fittrack/internal/server/migrations"
	"github.com/fittrackhq/fittrack/internal/server/repositories/goals"
	"github.com/fittrackhq/fittrack/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
	db *sql.DB
}

// NewPostgresRepositoryManager opens the database and applies pending
// migrations. The returned *sql.DB is shared with services for transactions.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, *sql.DB, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{db: db}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return m, db, nil
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Goals(db dbx.DBTX) goals.Repository {
	return goals.NewPostgresRepository(db)
}
