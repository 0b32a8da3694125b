package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/relay/auth"
	"github.com/hyperaware/doorbell-relay/internal/relay/config"
)

func newTestDeviceService(rm *fakeRepoManager) *DeviceService {
	cfg := &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
	}
	return NewDeviceService(nil, rm, cfg)
}

func TestDeviceService_Register(t *testing.T) {
	rm := newFakeRepoManager()
	s := newTestDeviceService(rm)

	device, err := s.Register(context.Background(), "front-door", "hunter2")
	require.NoError(t, err)
	require.NotNil(t, device)

	assert.NotEmpty(t, device.ID)
	assert.Equal(t, "front-door", device.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword(device.SecretHash, []byte("hunter2")))
	assert.NotEqual(t, "hunter2", string(device.SecretHash))
}

func TestDeviceService_RegisterEmptyArgs(t *testing.T) {
	s := newTestDeviceService(newFakeRepoManager())

	_, err := s.Register(context.Background(), "", "secret")
	assert.ErrorIs(t, err, common.ErrEmptyIdentifier)

	_, err = s.Register(context.Background(), "front-door", "")
	assert.ErrorIs(t, err, common.ErrEmptyIdentifier)
}

func TestDeviceService_LoginSuccess(t *testing.T) {
	rm := newFakeRepoManager()
	s := newTestDeviceService(rm)

	device, err := s.Register(context.Background(), "front-door", "hunter2")
	require.NoError(t, err)

	token, err := s.Login(context.Background(), "front-door", "hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	deviceID, err := auth.GetDeviceIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, device.ID, deviceID)
}

func TestDeviceService_LoginWrongSecret(t *testing.T) {
	rm := newFakeRepoManager()
	s := newTestDeviceService(rm)

	_, err := s.Register(context.Background(), "front-door", "hunter2")
	require.NoError(t, err)

	_, err = s.Login(context.Background(), "front-door", "letmein")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestDeviceService_LoginUnknownDevice(t *testing.T) {
	s := newTestDeviceService(newFakeRepoManager())

	_, err := s.Login(context.Background(), "nope", "whatever")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
