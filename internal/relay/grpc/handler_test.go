package grpc

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/relay/models"
	"github.com/hyperaware/doorbell-relay/internal/relay/pb"
)

type fakeDevices struct {
	registerErr error
	loginErr    error
	token       string
}

func (f *fakeDevices) Register(ctx context.Context, name, secret string) (*models.Device, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if name == "" || secret == "" {
		return nil, common.ErrEmptyIdentifier
	}
	return &models.Device{ID: "dev-1", Name: name}, nil
}

func (f *fakeDevices) Login(ctx context.Context, name, secret string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

type fakeUploads struct {
	err error
}

func (f *fakeUploads) PresignRingUpload(ctx context.Context) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return "pictures/20180327123000.jpg", "http://signed/ring", nil
}

func (f *fakeUploads) PresignTaskUpload(ctx context.Context, taskID string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	if taskID == "" {
		return "", "", common.ErrEmptyIdentifier
	}
	return "pictures/task_20180327123000_" + taskID + ".jpg", "http://signed/task", nil
}

type fakeRings struct {
	err    error
	ringID string
	uid    string
	answer bool
	called bool
}

func (f *fakeRings) Answer(ctx context.Context, ringID, uid string, disposition bool) error {
	f.called = true
	if f.err != nil {
		return f.err
	}
	f.ringID, f.uid, f.answer = ringID, uid, disposition
	return nil
}

type fakeTasks struct {
	err error
}

func (f *fakeTasks) Request(ctx context.Context) (*models.PictureTask, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PictureTask{ID: "task-1"}, nil
}

func newHandlerServer(d *fakeDevices, u *fakeUploads, r *fakeRings, tk *fakeTasks) *GRPCServer {
	return &GRPCServer{
		logger:    nopLogger{},
		jwtSecret: []byte("secret"),
		devices:   d,
		uploads:   u,
		rings:     r,
		tasks:     tk,
	}
}

func TestRegisterDevice(t *testing.T) {
	s := newHandlerServer(&fakeDevices{}, nil, nil, nil)

	resp, err := s.RegisterDevice(context.Background(), &pb.RegisterDeviceRequest{Name: "front-door", Secret: "s"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.DeviceId != "dev-1" {
		t.Fatalf("unexpected device id: %q", resp.DeviceId)
	}
}

func TestRegisterDevice_EmptyArgs(t *testing.T) {
	s := newHandlerServer(&fakeDevices{}, nil, nil, nil)

	_, err := s.RegisterDevice(context.Background(), &pb.RegisterDeviceRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestLogin(t *testing.T) {
	s := newHandlerServer(&fakeDevices{token: "jwt-token"}, nil, nil, nil)

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Name: "front-door", Secret: "s"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken != "jwt-token" {
		t.Fatalf("unexpected token: %q", resp.AccessToken)
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	s := newHandlerServer(&fakeDevices{loginErr: common.ErrorUnauthorized}, nil, nil, nil)

	_, err := s.Login(context.Background(), &pb.LoginRequest{Name: "front-door", Secret: "bad"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestPing(t *testing.T) {
	s := newHandlerServer(nil, nil, nil, nil)

	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
}

func TestPresignRingUpload(t *testing.T) {
	s := newHandlerServer(nil, &fakeUploads{}, nil, nil)

	resp, err := s.PresignRingUpload(context.Background(), &pb.PresignRingUploadRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ObjectKey != "pictures/20180327123000.jpg" || resp.Url != "http://signed/ring" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPresignTaskUpload_EmptyTaskID(t *testing.T) {
	s := newHandlerServer(nil, &fakeUploads{}, nil, nil)

	_, err := s.PresignTaskUpload(context.Background(), &pb.PresignTaskUploadRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestPresignTaskUpload_InternalError(t *testing.T) {
	s := newHandlerServer(nil, &fakeUploads{err: errors.New("s3 down")}, nil, nil)

	_, err := s.PresignTaskUpload(context.Background(), &pb.PresignTaskUploadRequest{TaskId: "42"})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", status.Code(err))
	}
}

func TestAnswerRing(t *testing.T) {
	r := &fakeRings{}
	s := newHandlerServer(nil, nil, r, nil)

	ctx := context.WithValue(context.Background(), DeviceIDKey, "user-7")
	_, err := s.AnswerRing(ctx, &pb.AnswerRingRequest{RingId: "r1", Disposition: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ringID != "r1" || r.uid != "user-7" || !r.answer {
		t.Fatalf("answer not recorded: %+v", r)
	}
}

func TestAnswerRing_MissingIdentity(t *testing.T) {
	r := &fakeRings{}
	s := newHandlerServer(nil, nil, r, nil)

	_, err := s.AnswerRing(context.Background(), &pb.AnswerRingRequest{RingId: "r1"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if r.called {
		t.Fatal("service should not be called without identity")
	}
}

func TestAnswerRing_NotFound(t *testing.T) {
	s := newHandlerServer(nil, nil, &fakeRings{err: common.ErrorNotFound}, nil)

	ctx := context.WithValue(context.Background(), DeviceIDKey, "user-7")
	_, err := s.AnswerRing(ctx, &pb.AnswerRingRequest{RingId: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}

func TestRequestPicture(t *testing.T) {
	s := newHandlerServer(nil, nil, nil, &fakeTasks{})

	resp, err := s.RequestPicture(context.Background(), &pb.RequestPictureRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TaskId != "task-1" {
		t.Fatalf("unexpected task id: %q", resp.TaskId)
	}
}

func TestRequestPicture_InternalError(t *testing.T) {
	s := newHandlerServer(nil, nil, nil, &fakeTasks{err: errors.New("db down")})

	_, err := s.RequestPicture(context.Background(), &pb.RequestPictureRequest{})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", status.Code(err))
	}
}
