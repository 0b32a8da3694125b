// Package devices provides the PostgreSQL-backed repository for registered
// devices (the doorbell thing and companion app installs).
package devices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/dbx"
	"github.com/hyperaware/doorbell-relay/internal/relay/models"
)

// PostgresRepository implements device storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the device row.
func (r *PostgresRepository) Create(ctx context.Context, device *models.Device) error {
	query := `INSERT INTO devices (id, name, secret_hash) VALUES ($1, $2, $3);`

	_, err := r.db.ExecContext(ctx, query, device.ID, device.Name, device.SecretHash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByName returns the device with the given unique name.
func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*models.Device, error) {
	query := `SELECT id, name, secret_hash, created_at FROM devices WHERE name=$1`

	var device models.Device
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&device.ID, &device.Name, &device.SecretHash, &device.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &device, nil
}
