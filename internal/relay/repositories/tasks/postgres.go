// Package tasks provides the PostgreSQL-backed repository for picture tasks.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/dbx"
	"github.com/hyperaware/doorbell-relay/internal/relay/models"
)

// PostgresRepository implements task storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new pending task (is_taken=false).
func (r *PostgresRepository) Create(ctx context.Context, task *models.PictureTask) error {
	query := `
		INSERT INTO picture_tasks (id, date, image_path, is_taken)
		VALUES ($1, $2, NULLIF($3, ''), false);
	`
	_, err := r.db.ExecContext(ctx, query, task.ID, task.Date, task.ImagePath)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Upsert overwrites the whole row keyed by task ID, marking it fulfilled.
func (r *PostgresRepository) Upsert(ctx context.Context, task *models.PictureTask) error {
	query := `
		INSERT INTO picture_tasks (id, date, image_path, is_taken)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		ON CONFLICT (id)
		DO UPDATE SET
			date = EXCLUDED.date,
			image_path = EXCLUDED.image_path,
			is_taken = EXCLUDED.is_taken;
	`
	res, err := r.db.ExecContext(ctx, query, task.ID, task.Date, task.ImagePath, task.IsTaken)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

// Get returns the task by ID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.PictureTask, error) {
	query := `SELECT id, date, image_path, is_taken FROM picture_tasks WHERE id=$1`

	var task models.PictureTask
	var imagePath sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.Date, &imagePath, &task.IsTaken,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	task.ImagePath = imagePath.String
	return &task, nil
}
