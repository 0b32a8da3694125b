package eventsource

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/relay/models"
)

// DocumentChange is a before/after pair for a single document, decoded from
// the change-feed NOTIFY payload. Only the fields matching the collection are
// populated; Before is nil for inserts.
type DocumentChange struct {
	Collection string
	Op         string
	ID         string

	RingBefore *models.Ring
	RingAfter  *models.Ring

	TaskBefore *models.PictureTask
	TaskAfter  *models.PictureTask
}

// notifyPayload mirrors the JSON built by the doorbell_notify_change trigger.
type notifyPayload struct {
	Collection string          `json:"collection"`
	Op         string          `json:"op"`
	ID         string          `json:"id"`
	Before     json.RawMessage `json:"before"`
	After      json.RawMessage `json:"after"`
}

// rowImage is a raw row as rendered by row_to_json, with schema column names.
type rowImage struct {
	ID                string    `json:"id"`
	Date              time.Time `json:"date"`
	ImagePath         *string   `json:"image_path"`
	AnswerUID         *string   `json:"answer_uid"`
	AnswerDisposition *bool     `json:"answer_disposition"`
	IsTaken           *bool     `json:"is_taken"`
}

// DecodeChange parses a change-feed notification payload into a typed
// DocumentChange. Unknown collections and unparseable payloads yield
// common.ErrMalformedEvent.
func DecodeChange(payload []byte) (DocumentChange, error) {
	var p notifyPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return DocumentChange{}, fmt.Errorf("%w: %v", common.ErrMalformedEvent, err)
	}
	if p.ID == "" || (p.Op != OpInsert && p.Op != OpUpdate) {
		return DocumentChange{}, common.ErrMalformedEvent
	}

	ch := DocumentChange{Collection: p.Collection, Op: p.Op, ID: p.ID}

	switch p.Collection {
	case CollectionRings:
		var err error
		if ch.RingBefore, err = decodeRing(p.Before); err != nil {
			return DocumentChange{}, err
		}
		if ch.RingAfter, err = decodeRing(p.After); err != nil {
			return DocumentChange{}, err
		}
	case CollectionTasks:
		var err error
		if ch.TaskBefore, err = decodeTask(p.Before); err != nil {
			return DocumentChange{}, err
		}
		if ch.TaskAfter, err = decodeTask(p.After); err != nil {
			return DocumentChange{}, err
		}
	default:
		return DocumentChange{}, common.ErrMalformedEvent
	}

	return ch, nil
}

func decodeRing(raw json.RawMessage) (*models.Ring, error) {
	img, err := decodeRow(raw)
	if err != nil || img == nil {
		return nil, err
	}
	ring := &models.Ring{ID: img.ID, Date: img.Date}
	if img.ImagePath != nil {
		ring.ImagePath = *img.ImagePath
	}
	if img.AnswerUID != nil {
		answer := &models.RingAnswer{UID: *img.AnswerUID}
		if img.AnswerDisposition != nil {
			answer.Disposition = *img.AnswerDisposition
		}
		ring.Answer = answer
	}
	return ring, nil
}

func decodeTask(raw json.RawMessage) (*models.PictureTask, error) {
	img, err := decodeRow(raw)
	if err != nil || img == nil {
		return nil, err
	}
	task := &models.PictureTask{ID: img.ID, Date: img.Date}
	if img.ImagePath != nil {
		task.ImagePath = *img.ImagePath
	}
	if img.IsTaken != nil {
		task.IsTaken = *img.IsTaken
	}
	return task, nil
}

func decodeRow(raw json.RawMessage) (*rowImage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var img rowImage
	if err := json.Unmarshal(raw, &img); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedEvent, err)
	}
	return &img, nil
}
