package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/hyperaware/doorbell-relay/internal/common"
	"github.com/hyperaware/doorbell-relay/internal/relay/auth"
	"github.com/hyperaware/doorbell-relay/internal/relay/pb"
)

type ctxKey string

// DeviceIDKey carries the authenticated caller's ID through the request
// context after the interceptor has verified the token.
const DeviceIDKey ctxKey = "deviceID"

var protectedMethods = map[string]bool{
	pb.DoorbellService_PresignRingUpload_FullMethodName: true,
	pb.DoorbellService_PresignTaskUpload_FullMethodName: true,
	pb.DoorbellService_AnswerRing_FullMethodName:        true,
	pb.DoorbellService_RequestPicture_FullMethodName:    true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		deviceID, err := auth.GetDeviceIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, DeviceIDKey, deviceID)

	}

	return handler(ctx, req)
}

func deviceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(DeviceIDKey).(string)
	return id, ok
}
