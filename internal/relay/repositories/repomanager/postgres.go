// Package repomanager wires the PostgreSQL repositories together and runs
// the embedded goose migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/hyperaware/doorbell-relay/internal/dbx"
	"github.com/hyperaware/doorbell-relay/internal/relay/migrations"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/devices"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/rings"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/tasks"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager is the production RepositoryManager.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager returns a manager for PostgreSQL-backed repos.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresRepositoryManager) Rings(db dbx.DBTX) rings.Repository {
	return rings.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tasks(db dbx.DBTX) tasks.Repository {
	return tasks.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Devices(db dbx.DBTX) devices.Repository {
	return devices.NewPostgresRepository(db)
}
