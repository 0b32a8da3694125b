package services

import (
	"context"
	"database/sql"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/dbx"
	"github.com/hyperaware/doorbell-relay/internal/logging"
	"github.com/hyperaware/doorbell-relay/internal/relay/eventsource"
	"github.com/hyperaware/doorbell-relay/internal/relay/messaging"
	"github.com/hyperaware/doorbell-relay/internal/relay/models"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/devices"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/rings"
	"github.com/hyperaware/doorbell-relay/internal/relay/repositories/tasks"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeRingRepo struct {
	byID     map[string]*models.Ring
	upserted []*models.Ring
	err      error
}

func newFakeRingRepo() *fakeRingRepo {
	return &fakeRingRepo{byID: make(map[string]*models.Ring)}
}

func (r *fakeRingRepo) Upsert(ctx context.Context, ring *models.Ring) error {
	if r.err != nil {
		return r.err
	}
	r.upserted = append(r.upserted, ring)
	r.byID[ring.ID] = ring
	return nil
}

func (r *fakeRingRepo) Get(ctx context.Context, id string) (*models.Ring, error) {
	if r.err != nil {
		return nil, r.err
	}
	ring, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return ring, nil
}

func (r *fakeRingRepo) SetAnswer(ctx context.Context, id string, uid string, disposition bool) error {
	if r.err != nil {
		return r.err
	}
	ring, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	ring.Answer = &models.RingAnswer{UID: uid, Disposition: disposition}
	return nil
}

type fakeTaskRepo struct {
	byID     map[string]*models.PictureTask
	created  []*models.PictureTask
	upserted []*models.PictureTask
	err      error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{byID: make(map[string]*models.PictureTask)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *models.PictureTask) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, task)
	r.byID[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) Upsert(ctx context.Context, task *models.PictureTask) error {
	if r.err != nil {
		return r.err
	}
	r.upserted = append(r.upserted, task)
	r.byID[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) Get(ctx context.Context, id string) (*models.PictureTask, error) {
	if r.err != nil {
		return nil, r.err
	}
	task, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return task, nil
}

type fakeDeviceRepo struct {
	byName map[string]*models.Device
	err    error
}

func newFakeDeviceRepo() *fakeDeviceRepo {
	return &fakeDeviceRepo{byName: make(map[string]*models.Device)}
}

func (r *fakeDeviceRepo) Create(ctx context.Context, device *models.Device) error {
	if r.err != nil {
		return r.err
	}
	r.byName[device.Name] = device
	return nil
}

func (r *fakeDeviceRepo) GetByName(ctx context.Context, name string) (*models.Device, error) {
	if r.err != nil {
		return nil, r.err
	}
	device, ok := r.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return device, nil
}

type fakeRepoManager struct {
	rings   *fakeRingRepo
	tasks   *fakeTaskRepo
	devices *fakeDeviceRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		rings:   newFakeRingRepo(),
		tasks:   newFakeTaskRepo(),
		devices: newFakeDeviceRepo(),
	}
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }
func (m *fakeRepoManager) Rings(db dbx.DBTX) rings.Repository                  { return m.rings }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasks.Repository                  { return m.tasks }
func (m *fakeRepoManager) Devices(db dbx.DBTX) devices.Repository              { return m.devices }

type sentMessage struct {
	topic string
	msg   messaging.Message
}

type fakeMessenger struct {
	sends []sentMessage
	err   error
}

func (f *fakeMessenger) SendToTopic(ctx context.Context, topic string, msg messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sends = append(f.sends, sentMessage{topic: topic, msg: msg})
	return "msg-1", nil
}

func objectFinalized(key string) eventsource.ObjectFinalized {
	return eventsource.ObjectFinalized{Key: key}
}
