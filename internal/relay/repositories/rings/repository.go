package rings

import (
	"context"

	"github.com/hyperaware/doorbell-relay/internal/relay/models"
)

// Repository is the persistence contract for ring documents.
type Repository interface {
	// Upsert performs a full-document overwrite of the ring, clearing any
	// previously recorded answer.
	Upsert(ctx context.Context, ring *models.Ring) error

	// Get returns the ring by ID or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Ring, error)

	// SetAnswer records a user's response on an existing ring.
	SetAnswer(ctx context.Context, id string, uid string, disposition bool) error
}
