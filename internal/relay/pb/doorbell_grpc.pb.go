package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	DoorbellService_RegisterDevice_FullMethodName    = "/doorbell.relay.DoorbellService/RegisterDevice"
	DoorbellService_Login_FullMethodName             = "/doorbell.relay.DoorbellService/Login"
	DoorbellService_Ping_FullMethodName              = "/doorbell.relay.DoorbellService/Ping"
	DoorbellService_PresignRingUpload_FullMethodName = "/doorbell.relay.DoorbellService/PresignRingUpload"
	DoorbellService_PresignTaskUpload_FullMethodName = "/doorbell.relay.DoorbellService/PresignTaskUpload"
	DoorbellService_AnswerRing_FullMethodName        = "/doorbell.relay.DoorbellService/AnswerRing"
	DoorbellService_RequestPicture_FullMethodName    = "/doorbell.relay.DoorbellService/RequestPicture"
)

// DoorbellServiceClient is the client API for DoorbellService.
type DoorbellServiceClient interface {
	RegisterDevice(ctx context.Context, in *RegisterDeviceRequest, opts ...grpc.CallOption) (*RegisterDeviceResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	PresignRingUpload(ctx context.Context, in *PresignRingUploadRequest, opts ...grpc.CallOption) (*PresignUploadResponse, error)
	PresignTaskUpload(ctx context.Context, in *PresignTaskUploadRequest, opts ...grpc.CallOption) (*PresignUploadResponse, error)
	AnswerRing(ctx context.Context, in *AnswerRingRequest, opts ...grpc.CallOption) (*AnswerRingResponse, error)
	RequestPicture(ctx context.Context, in *RequestPictureRequest, opts ...grpc.CallOption) (*RequestPictureResponse, error)
}

type doorbellServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDoorbellServiceClient(cc grpc.ClientConnInterface) DoorbellServiceClient {
	return &doorbellServiceClient{cc}
}

func (c *doorbellServiceClient) RegisterDevice(ctx context.Context, in *RegisterDeviceRequest, opts ...grpc.CallOption) (*RegisterDeviceResponse, error) {
	out := new(RegisterDeviceResponse)
	if err := c.cc.Invoke(ctx, DoorbellService_RegisterDevice_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *doorbellServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	if err := c.cc.Invoke(ctx, DoorbellService_Login_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *doorbellServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	out := new(PingResponse)
	if err := c.cc.Invoke(ctx, DoorbellService_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *doorbellServiceClient) PresignRingUpload(ctx context.Context, in *PresignRingUploadRequest, opts ...grpc.CallOption) (*PresignUploadResponse, error) {
	out := new(PresignUploadResponse)
	if err := c.cc.Invoke(ctx, DoorbellService_PresignRingUpload_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *doorbellServiceClient) PresignTaskUpload(ctx context.Context, in *PresignTaskUploadRequest, opts ...grpc.CallOption) (*PresignUploadResponse, error) {
	out := new(PresignUploadResponse)
	if err := c.cc.Invoke(ctx, DoorbellService_PresignTaskUpload_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *doorbellServiceClient) AnswerRing(ctx context.Context, in *AnswerRingRequest, opts ...grpc.CallOption) (*AnswerRingResponse, error) {
	out := new(AnswerRingResponse)
	if err := c.cc.Invoke(ctx, DoorbellService_AnswerRing_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *doorbellServiceClient) RequestPicture(ctx context.Context, in *RequestPictureRequest, opts ...grpc.CallOption) (*RequestPictureResponse, error) {
	out := new(RequestPictureResponse)
	if err := c.cc.Invoke(ctx, DoorbellService_RequestPicture_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DoorbellServiceServer is the server API for DoorbellService. Implementations
// should embed UnimplementedDoorbellServiceServer for forward compatibility.
type DoorbellServiceServer interface {
	RegisterDevice(context.Context, *RegisterDeviceRequest) (*RegisterDeviceResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	PresignRingUpload(context.Context, *PresignRingUploadRequest) (*PresignUploadResponse, error)
	PresignTaskUpload(context.Context, *PresignTaskUploadRequest) (*PresignUploadResponse, error)
	AnswerRing(context.Context, *AnswerRingRequest) (*AnswerRingResponse, error)
	RequestPicture(context.Context, *RequestPictureRequest) (*RequestPictureResponse, error)
}

// UnimplementedDoorbellServiceServer provides Unimplemented fallbacks.
type UnimplementedDoorbellServiceServer struct{}

func (UnimplementedDoorbellServiceServer) RegisterDevice(context.Context, *RegisterDeviceRequest) (*RegisterDeviceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterDevice not implemented")
}
func (UnimplementedDoorbellServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedDoorbellServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedDoorbellServiceServer) PresignRingUpload(context.Context, *PresignRingUploadRequest) (*PresignUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PresignRingUpload not implemented")
}
func (UnimplementedDoorbellServiceServer) PresignTaskUpload(context.Context, *PresignTaskUploadRequest) (*PresignUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PresignTaskUpload not implemented")
}
func (UnimplementedDoorbellServiceServer) AnswerRing(context.Context, *AnswerRingRequest) (*AnswerRingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnswerRing not implemented")
}
func (UnimplementedDoorbellServiceServer) RequestPicture(context.Context, *RequestPictureRequest) (*RequestPictureResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestPicture not implemented")
}

func RegisterDoorbellServiceServer(s grpc.ServiceRegistrar, srv DoorbellServiceServer) {
	s.RegisterService(&DoorbellService_ServiceDesc, srv)
}

func _DoorbellService_RegisterDevice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterDeviceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DoorbellServiceServer).RegisterDevice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DoorbellService_RegisterDevice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DoorbellServiceServer).RegisterDevice(ctx, req.(*RegisterDeviceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DoorbellService_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DoorbellServiceServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DoorbellService_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DoorbellServiceServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DoorbellService_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DoorbellServiceServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DoorbellService_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DoorbellServiceServer).Ping(ctx, req.(*PingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DoorbellService_PresignRingUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PresignRingUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DoorbellServiceServer).PresignRingUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DoorbellService_PresignRingUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DoorbellServiceServer).PresignRingUpload(ctx, req.(*PresignRingUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DoorbellService_PresignTaskUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PresignTaskUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DoorbellServiceServer).PresignTaskUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DoorbellService_PresignTaskUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DoorbellServiceServer).PresignTaskUpload(ctx, req.(*PresignTaskUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DoorbellService_AnswerRing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnswerRingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DoorbellServiceServer).AnswerRing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DoorbellService_AnswerRing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DoorbellServiceServer).AnswerRing(ctx, req.(*AnswerRingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DoorbellService_RequestPicture_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RequestPictureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DoorbellServiceServer).RequestPicture(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DoorbellService_RequestPicture_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DoorbellServiceServer).RequestPicture(ctx, req.(*RequestPictureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DoorbellService_ServiceDesc is the grpc.ServiceDesc for DoorbellService.
var DoorbellService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "doorbell.relay.DoorbellService",
	HandlerType: (*DoorbellServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "RegisterDevice", Handler: _DoorbellService_RegisterDevice_Handler},
		{MethodName: "Login", Handler: _DoorbellService_Login_Handler},
		{MethodName: "Ping", Handler: _DoorbellService_Ping_Handler},
		{MethodName: "PresignRingUpload", Handler: _DoorbellService_PresignRingUpload_Handler},
		{MethodName: "PresignTaskUpload", Handler: _DoorbellService_PresignTaskUpload_Handler},
		{MethodName: "AnswerRing", Handler: _DoorbellService_AnswerRing_Handler},
		{MethodName: "RequestPicture", Handler: _DoorbellService_RequestPicture_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "doorbell.proto",
}
