package repomanager

import (
	"context"
	"database/sql"

	"github.com/hyperaware/doorbell-relay/internal/dbx"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/devices"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/rings"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/tasks"
)

// RepositoryManager hands out repositories bound to a *sql.DB or *sql.Tx,
// so services can run multi-repo work inside one transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Rings(db dbx.DBTX) rings.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Devices(db dbx.DBTX) devices.Repository
}
