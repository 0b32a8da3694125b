package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/relay/auth"
	"github.com/hyperaware/doorbell-relay/internal/relay/config"
	"github.com/hyperaware/doorbell-relay/internal/relay/models"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/repomanager"
)

// DeviceService registers doorbell devices and exchanges their shared
// secret for a short-lived access token.
type DeviceService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewDeviceService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *DeviceService {
	return &DeviceService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a device with a bcrypt hash of its secret. The plain
// secret is never stored.
func (s *DeviceService) Register(ctx context.Context, name string, secret string) (*models.Device, error) {
	if name == "" || secret == "" {
		return nil, common.ErrEmptyIdentifier
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	device := &models.Device{
		ID:         uuid.NewString(),
		Name:       name,
		SecretHash: hash,
		CreatedAt:  time.Now(),
	}

	repo := s.repomanager.Devices(s.db)
	if err := repo.Create(ctx, device); err != nil {
		return nil, fmt.Errorf("error creating device: %v", err)
	}

	return device, nil
}

// Login verifies the device secret and issues an access token. Unknown
// names and wrong secrets are indistinguishable to the caller.
func (s *DeviceService) Login(ctx context.Context, name string, secret string) (string, error) {
	repo := s.repomanager.Devices(s.db)

	device, err := repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(device.SecretHash, []byte(secret)); err != nil {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(device.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
