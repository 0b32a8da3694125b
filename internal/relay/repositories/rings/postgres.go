// Package rings provides the PostgreSQL-backed repository for ring documents.
package rings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/dbx"
	"github.com/hyperaware/doorbell-relay/internal/relay/models"
)

// PostgresRepository implements ring storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert overwrites the whole row keyed by ring ID. A repeated upload with
// the same identifier replaces the prior record and resets the answer, which
// re-arms the answer notification gate downstream.
func (r *PostgresRepository) Upsert(ctx context.Context, ring *models.Ring) error {
	query := `
		INSERT INTO rings (id, date, image_path, answer_uid, answer_disposition)
		VALUES ($1, $2, $3, NULL, NULL)
		ON CONFLICT (id)
		DO UPDATE SET
			date = EXCLUDED.date,
			image_path = EXCLUDED.image_path,
			answer_uid = NULL,
			answer_disposition = NULL;
	`
	res, err := r.db.ExecContext(ctx, query, ring.ID, ring.Date, ring.ImagePath)
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

// Get returns the ring by ID, mapping the nullable answer columns to a
// RingAnswer sub-record when present.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Ring, error) {
	query := `SELECT id, date, image_path, answer_uid, answer_disposition FROM rings WHERE id=$1`

	var ring models.Ring
	var uid sql.NullString
	var disposition sql.NullBool
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&ring.ID, &ring.Date, &ring.ImagePath, &uid, &disposition,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if uid.Valid {
		ring.Answer = &models.RingAnswer{UID: uid.String, Disposition: disposition.Bool}
	}
	return &ring, nil
}

// SetAnswer records the response on the identified ring. Missing rings yield
// common.ErrorNotFound. Duplicate answers overwrite; the change gate decides
// whether a notification is due.
func (r *PostgresRepository) SetAnswer(ctx context.Context, id string, uid string, disposition bool) error {
	query := `UPDATE rings SET answer_uid=$2, answer_disposition=$3 WHERE id=$1`

	res, err := r.db.ExecContext(ctx, query, id, uid, disposition)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
