package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/relay/models"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/repomanager"
)

// RingService exposes ring reads and the answer operation used by the
// companion app. The "answers" push is not sent here; recording the answer
// produces a row update that the change feed and gate turn into the push.
type RingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRingService(db *sql.DB, m repomanager.RepositoryManager) *RingService {
	return &RingService{db: db, repomanager: m}
}

// Answer records a user's disposition on a ring.
func (s *RingService) Answer(ctx context.Context, ringID string, uid string, disposition bool) error {
	if ringID == "" || uid == "" {
		return common.ErrEmptyIdentifier
	}

	repo := s.repomanager.Rings(s.db)
	if err := repo.SetAnswer(ctx, ringID, uid, disposition); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error answering ring: %v", err)
	}

	return nil
}

// Get returns a ring by ID.
func (s *RingService) Get(ctx context.Context, id string) (*models.Ring, error) {
	repo := s.repomanager.Rings(s.db)
	return repo.Get(ctx, id)
}
