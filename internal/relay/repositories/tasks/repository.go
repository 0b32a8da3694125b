package tasks

import (
	"context"

	"github.com/hyperaware/doorbell-relay/internal/relay/models"
)

// Repository is the persistence contract for picture-task documents.
type Repository interface {
	// Create inserts a fresh, unfulfilled task. The insert is observed by the
	// change feed and drives the "take a picture" notification.
	Create(ctx context.Context, task *models.PictureTask) error

	// Upsert performs a full-document overwrite, used when the fulfillment
	// photo lands in storage.
	Upsert(ctx context.Context, task *models.PictureTask) error

	// Get returns the task by ID or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.PictureTask, error)
}
