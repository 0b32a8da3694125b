// Package pb carries the wire types for the doorbell gRPC API, mirroring
// doorbell.proto. The messages are flat scalar structs kept in sync with
// the proto file by hand.
package pb

import "fmt"

type RegisterDeviceRequest struct {
	Name   string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Secret string `protobuf:"bytes,2,opt,name=secret,proto3" json:"secret,omitempty"`
}

func (m *RegisterDeviceRequest) Reset()         { *m = RegisterDeviceRequest{} }
func (m *RegisterDeviceRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RegisterDeviceRequest) ProtoMessage()    {}

type RegisterDeviceResponse struct {
	DeviceId string `protobuf:"bytes,1,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
}

func (m *RegisterDeviceResponse) Reset()         { *m = RegisterDeviceResponse{} }
func (m *RegisterDeviceResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RegisterDeviceResponse) ProtoMessage()    {}

type LoginRequest struct {
	Name   string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Secret string `protobuf:"bytes,2,opt,name=secret,proto3" json:"secret,omitempty"`
}

func (m *LoginRequest) Reset()         { *m = LoginRequest{} }
func (m *LoginRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*LoginRequest) ProtoMessage()    {}

type LoginResponse struct {
	AccessToken string `protobuf:"bytes,1,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
}

func (m *LoginResponse) Reset()         { *m = LoginResponse{} }
func (m *LoginResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*LoginResponse) ProtoMessage()    {}

type PingRequest struct{}

func (m *PingRequest) Reset()         { *m = PingRequest{} }
func (m *PingRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*PingRequest) ProtoMessage()    {}

type PingResponse struct {
	Status string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *PingResponse) Reset()         { *m = PingResponse{} }
func (m *PingResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*PingResponse) ProtoMessage()    {}

type PresignRingUploadRequest struct{}

func (m *PresignRingUploadRequest) Reset()         { *m = PresignRingUploadRequest{} }
func (m *PresignRingUploadRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*PresignRingUploadRequest) ProtoMessage()    {}

type PresignTaskUploadRequest struct {
	TaskId string `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
}

func (m *PresignTaskUploadRequest) Reset()         { *m = PresignTaskUploadRequest{} }
func (m *PresignTaskUploadRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*PresignTaskUploadRequest) ProtoMessage()    {}

type PresignUploadResponse struct {
	ObjectKey string `protobuf:"bytes,1,opt,name=object_key,json=objectKey,proto3" json:"object_key,omitempty"`
	Url       string `protobuf:"bytes,2,opt,name=url,proto3" json:"url,omitempty"`
}

func (m *PresignUploadResponse) Reset()         { *m = PresignUploadResponse{} }
func (m *PresignUploadResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*PresignUploadResponse) ProtoMessage()    {}

type AnswerRingRequest struct {
	RingId      string `protobuf:"bytes,1,opt,name=ring_id,json=ringId,proto3" json:"ring_id,omitempty"`
	Disposition bool   `protobuf:"varint,2,opt,name=disposition,proto3" json:"disposition,omitempty"`
}

func (m *AnswerRingRequest) Reset()         { *m = AnswerRingRequest{} }
func (m *AnswerRingRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AnswerRingRequest) ProtoMessage()    {}

type AnswerRingResponse struct{}

func (m *AnswerRingResponse) Reset()         { *m = AnswerRingResponse{} }
func (m *AnswerRingResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*AnswerRingResponse) ProtoMessage()    {}

type RequestPictureRequest struct{}

func (m *RequestPictureRequest) Reset()         { *m = RequestPictureRequest{} }
func (m *RequestPictureRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*RequestPictureRequest) ProtoMessage()    {}

type RequestPictureResponse struct {
	TaskId string `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
}

func (m *RequestPictureResponse) Reset()         { *m = RequestPictureResponse{} }
func (m *RequestPictureResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*RequestPictureResponse) ProtoMessage()    {}
