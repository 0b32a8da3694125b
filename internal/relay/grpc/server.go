// Package grpc serves the device and companion-app API: registration,
// login, presigned upload URLs, ring answers, and picture requests.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/hyperaware/doorbell-relay/internal/logging"
	"github.com/hyperaware/doorbell-relay/internal/relay/models"
	"github.com/hyperaware/doorbell-relay/internal/relay/pb"
)

// DeviceAuthenticator registers devices and exchanges secrets for tokens.
type DeviceAuthenticator interface {
	Register(ctx context.Context, name string, secret string) (*models.Device, error)
	Login(ctx context.Context, name string, secret string) (string, error)
}

// UploadBroker reserves storage keys and signs upload URLs.
type UploadBroker interface {
	PresignRingUpload(ctx context.Context) (string, string, error)
	PresignTaskUpload(ctx context.Context, taskID string) (string, string, error)
}

// RingAnswerer records a caller's answer on a ring.
type RingAnswerer interface {
	Answer(ctx context.Context, ringID string, uid string, disposition bool) error
}

// PictureRequester creates picture tasks.
type PictureRequester interface {
	Request(ctx context.Context) (*models.PictureTask, error)
}

type GRPCServer struct {
	pb.UnimplementedDoorbellServiceServer
	address   string
	devices   DeviceAuthenticator
	uploads   UploadBroker
	rings     RingAnswerer
	tasks     PictureRequester
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, devices DeviceAuthenticator, uploads UploadBroker, rings RingAnswerer, tasks PictureRequester, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		devices:   devices,
		uploads:   uploads,
		rings:     rings,
		tasks:     tasks,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterDoorbellServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
