package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hyperaware/doorbell-relay/internal/relay/models"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/repomanager"
)

// TaskService creates picture tasks on behalf of the companion app. The
// insert travels through the change feed; the gate asks the camera for a
// picture only while the task is unfulfilled.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m, now: time.Now}
}

// Request creates a new unfulfilled picture task.
func (s *TaskService) Request(ctx context.Context) (*models.PictureTask, error) {
	task := &models.PictureTask{
		ID:   uuid.NewString(),
		Date: s.now(),
	}

	repo := s.repomanager.Tasks(s.db)
	if err := repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating picture task: %v", err)
	}

	return task, nil
}

// Get returns a picture task by ID.
func (s *TaskService) Get(ctx context.Context, id string) (*models.PictureTask, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.Get(ctx, id)
}
