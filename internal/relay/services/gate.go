package services

import (
	"context"
	"strconv"

	"github.com/hyperaware/doorbell-relay/internal/logging"
	"github.com/hyperaware/doorbell-relay/internal/relay/eventsource"
	"github.com/hyperaware/doorbell-relay/internal/relay/messaging"
)

// GateService watches the document change feed and decides which changes
// deserve a push. Only two transitions qualify: a ring gaining its first
// answer, and a fresh picture task that has not been fulfilled yet. Echo
// updates produced by the relay's own writes are filtered out here.
type GateService struct {
	messenger messaging.Messenger
	logger    logging.Logger
}

func NewGateService(messenger messaging.Messenger, logger logging.Logger) *GateService {
	return &GateService{
		messenger: messenger,
		logger:    logger.With("module", "gate"),
	}
}

// HandleChange implements eventsource.ChangeHandler.
func (s *GateService) HandleChange(ctx context.Context, ch eventsource.DocumentChange) {
	switch {
	case ch.Collection == eventsource.CollectionRings && ch.Op == eventsource.OpUpdate:
		s.handleRingUpdate(ctx, ch)
	case ch.Collection == eventsource.CollectionTasks && ch.Op == eventsource.OpInsert:
		s.handleTaskInsert(ctx, ch)
	}
}

// handleRingUpdate fires "answers" exactly once per ring, on the update that
// records the first answer. Updates that carry no answer, or arrive after the
// ring was already answered, are silent.
func (s *GateService) handleRingUpdate(ctx context.Context, ch eventsource.DocumentChange) {
	if ch.RingAfter == nil || !ch.RingAfter.Answered() {
		return
	}
	if ch.RingBefore != nil && ch.RingBefore.Answered() {
		s.logger.Debug(ctx, "ring already answered", "ring_id", ch.ID)
		return
	}

	s.notify(ctx, TopicAnswers, messaging.Message{
		Data: map[string]string{
			"disposition": strconv.FormatBool(ch.RingAfter.Answer.Disposition),
			"ring_id":     ch.ID,
		},
	})
}

// handleTaskInsert fires "tasks" for a newly requested picture task. An
// insert that is already fulfilled needs no trip to the camera.
func (s *GateService) handleTaskInsert(ctx context.Context, ch eventsource.DocumentChange) {
	if ch.TaskAfter == nil || ch.TaskAfter.IsTaken {
		return
	}

	s.notify(ctx, TopicTasks, messaging.Message{
		Data: map[string]string{"task": ch.ID},
	})
}

func (s *GateService) notify(ctx context.Context, topic string, msg messaging.Message) {
	msgID, err := s.messenger.SendToTopic(ctx, topic, msg)
	if err != nil {
		s.logger.Error(ctx, "error sending notification", "topic", topic, "error", err)
		return
	}
	s.logger.Info(ctx, "notification sent", "topic", topic, "message_id", msgID)
}
