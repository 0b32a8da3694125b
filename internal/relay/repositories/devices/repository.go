package devices

import (
	"context"

	"github.com/hyperaware/doorbell-relay/internal/relay/models"
)

// Repository is the persistence contract for registered devices.
type Repository interface {
	// Create stores a new device. The ID must be set by the caller.
	Create(ctx context.Context, device *models.Device) error

	// GetByName returns the device by unique name or common.ErrorNotFound.
	GetByName(ctx context.Context, name string) (*models.Device, error)
}
