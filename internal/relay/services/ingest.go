package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/hyperaware/doorbell-relay/internal/logging"
	"github.com/hyperaware/doorbell-relay/internal/relay/classify"
	"github.com/hyperaware/doorbell-relay/internal/relay/eventsource"
	"github.com/hyperaware/doorbell-relay/internal/relay/messaging"
	"github.com/hyperaware/doorbell-relay/internal/relay/models"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/repomanager"
)

// IngestService reacts to finished uploads. A plain picture becomes a ring
// document plus a "rings" push; a task-marked picture fulfills the matching
// picture task and announces it on "tasks_done".
//
// All failures are logged and swallowed. The event source does not retry,
// and a failed write must never produce a push for state that was not saved.
type IngestService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	messenger   messaging.Messenger
	logger      logging.Logger
	now         func() time.Time
}

func NewIngestService(db *sql.DB, m repomanager.RepositoryManager, messenger messaging.Messenger, logger logging.Logger) *IngestService {
	return &IngestService{
		db:          db,
		repomanager: m,
		messenger:   messenger,
		logger:      logger.With("module", "ingest"),
		now:         time.Now,
	}
}

// HandleObjectFinalized implements eventsource.ObjectHandler.
func (s *IngestService) HandleObjectFinalized(ctx context.Context, ev eventsource.ObjectFinalized) {
	c, err := classify.Classify(ev.Key)
	if err != nil {
		s.logger.Warn(ctx, "skipping upload with unusable key", "key", ev.Key, "error", err)
		return
	}

	switch c.Kind {
	case classify.KindTask:
		s.finalizeTask(ctx, ev.Key, c.ID)
	default:
		s.finalizeRing(ctx, ev.Key, c.ID)
	}
}

func (s *IngestService) finalizeRing(ctx context.Context, key string, id string) {
	ring := &models.Ring{ID: id, Date: s.now(), ImagePath: key}

	repo := s.repomanager.Rings(s.db)
	if err := repo.Upsert(ctx, ring); err != nil {
		s.logger.Error(ctx, "error saving ring", "ring_id", id, "error", err)
		return
	}

	s.notify(ctx, TopicRings, messaging.Message{
		Notification: &messaging.Notification{
			Title:       "Ring Ring!",
			Body:        "There is someone at the door!",
			ClickAction: ClickActionAnswerRing,
		},
		Data: map[string]string{"ring_id": id},
	})
}

func (s *IngestService) finalizeTask(ctx context.Context, key string, id string) {
	task := &models.PictureTask{ID: id, Date: s.now(), ImagePath: key, IsTaken: true}

	repo := s.repomanager.Tasks(s.db)
	if err := repo.Upsert(ctx, task); err != nil {
		s.logger.Error(ctx, "error saving picture task", "task_id", id, "error", err)
		return
	}

	s.notify(ctx, TopicTasksDone, messaging.Message{
		Notification: &messaging.Notification{
			Title:       "Task done!",
			Body:        "Already taken a picture!",
			ClickAction: ClickActionTakenPic,
		},
		Data: map[string]string{"task_id": id},
	})
}

// notify makes exactly one dispatch attempt and logs the outcome.
func (s *IngestService) notify(ctx context.Context, topic string, msg messaging.Message) {
	msgID, err := s.messenger.SendToTopic(ctx, topic, msg)
	if err != nil {
		s.logger.Error(ctx, "error sending notification", "topic", topic, "error", err)
		return
	}
	s.logger.Info(ctx, "notification sent", "topic", topic, "message_id", msgID)
}
