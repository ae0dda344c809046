// Package repomanager wires repositories to a database handle. Repositories
// are constructed per call against a dbx.DBTX so the same code path works
// both directly on *sql.DB and inside a transaction.
package repomanager

import (
	"context"

	"github.com/fittrackhq/fittrack/internal/dbx"
	"github.com/fittrackhq/fittrack/internal/server/repositories/goals"
	"github.com/fittrackhq/fittrack/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users(db dbx.DBTX) users.Repository
	Goals(db dbx.DBTX) goals.Repository
}
