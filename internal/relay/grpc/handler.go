package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/relay/pb"
)

func (s *GRPCServer) RegisterDevice(ctx context.Context, req *pb.RegisterDeviceRequest) (*pb.RegisterDeviceResponse, error) {

	s.logger.Info(ctx, "Device registration request", "name", req.Name)

	device, err := s.devices.Register(ctx, req.Name, req.Secret)
	if err != nil {
		if errors.Is(err, common.ErrEmptyIdentifier) {
			return nil, status.Error(codes.InvalidArgument, "name and secret are required")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Device registered", "name", device.Name, "device_id", device.ID)
	return &pb.RegisterDeviceResponse{DeviceId: device.ID}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	token, err := s.devices.Login(ctx, req.Name, req.Secret)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{AccessToken: token}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) PresignRingUpload(ctx context.Context, req *pb.PresignRingUploadRequest) (*pb.PresignUploadResponse, error) {

	key, url, err := s.uploads.PresignRingUpload(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.PresignUploadResponse{ObjectKey: key, Url: url}, nil

}

func (s *GRPCServer) PresignTaskUpload(ctx context.Context, req *pb.PresignTaskUploadRequest) (*pb.PresignUploadResponse, error) {

	key, url, err := s.uploads.PresignTaskUpload(ctx, req.TaskId)
	if err != nil {
		if errors.Is(err, common.ErrEmptyIdentifier) {
			return nil, status.Error(codes.InvalidArgument, "task_id is required")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.PresignUploadResponse{ObjectKey: key, Url: url}, nil

}

func (s *GRPCServer) AnswerRing(ctx context.Context, req *pb.AnswerRingRequest) (*pb.AnswerRingResponse, error) {

	uid, ok := deviceIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing caller identity")
	}

	err := s.rings.Answer(ctx, req.RingId, uid, req.Disposition)
	if err != nil {
		if errors.Is(err, common.ErrEmptyIdentifier) {
			return nil, status.Error(codes.InvalidArgument, "ring_id is required")
		}
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "ring not found")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Ring answered", "ring_id", req.RingId, "disposition", req.Disposition)
	return &pb.AnswerRingResponse{}, nil

}

func (s *GRPCServer) RequestPicture(ctx context.Context, req *pb.RequestPictureRequest) (*pb.RequestPictureResponse, error) {

	task, err := s.tasks.Request(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Picture task requested", "task_id", task.ID)
	return &pb.RequestPictureResponse{TaskId: task.ID}, nil

}
