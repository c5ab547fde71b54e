// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: enricher/v1/enricher.proto

package enricherv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	EnricherService_SubmitUpload_FullMethodName        = "/enricher.v1.EnricherService/SubmitUpload"
	EnricherService_ProcessNow_FullMethodName          = "/enricher.v1.EnricherService/ProcessNow"
	EnricherService_GetJobStatus_FullMethodName        = "/enricher.v1.EnricherService/GetJobStatus"
	EnricherService_ListUploads_FullMethodName         = "/enricher.v1.EnricherService/ListUploads"
	EnricherService_ListEnrichedRecords_FullMethodName = "/enricher.v1.EnricherService/ListEnrichedRecords"
)

// EnricherServiceClient is the client API for EnricherService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type EnricherServiceClient interface {
	// SubmitUpload persists a company-list file verbatim; it is enriched later
	// by the scheduler. Duplicate content for the same owner is deduplicated.
	SubmitUpload(ctx context.Context, in *SubmitUploadRequest, opts ...grpc.CallOption) (*SubmitUploadResponse, error)
	// ProcessNow admits a pending upload immediately, bypassing the next tick.
	// Fails with ALREADY_EXISTS when the owner already has an active job.
	ProcessNow(ctx context.Context, in *ProcessNowRequest, opts ...grpc.CallOption) (*ProcessNowResponse, error)
	// GetJobStatus returns the upload status plus the latest job progress snapshot.
	GetJobStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*GetJobStatusResponse, error)
	// ListUploads returns the owner's uploads with summary counts by status.
	ListUploads(ctx context.Context, in *ListUploadsRequest, opts ...grpc.CallOption) (*ListUploadsResponse, error)
	// ListEnrichedRecords returns the enriched rows for a completed upload.
	ListEnrichedRecords(ctx context.Context, in *ListEnrichedRecordsRequest, opts ...grpc.CallOption) (*ListEnrichedRecordsResponse, error)
}

type enricherServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEnricherServiceClient(cc grpc.ClientConnInterface) EnricherServiceClient {
	return &enricherServiceClient{cc}
}

func (c *enricherServiceClient) SubmitUpload(ctx context.Context, in *SubmitUploadRequest, opts ...grpc.CallOption) (*SubmitUploadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitUploadResponse)
	err := c.cc.Invoke(ctx, EnricherService_SubmitUpload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *enricherServiceClient) ProcessNow(ctx context.Context, in *ProcessNowRequest, opts ...grpc.CallOption) (*ProcessNowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessNowResponse)
	err := c.cc.Invoke(ctx, EnricherService_ProcessNow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *enricherServiceClient) GetJobStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*GetJobStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobStatusResponse)
	err := c.cc.Invoke(ctx, EnricherService_GetJobStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *enricherServiceClient) ListUploads(ctx context.Context, in *ListUploadsRequest, opts ...grpc.CallOption) (*ListUploadsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListUploadsResponse)
	err := c.cc.Invoke(ctx, EnricherService_ListUploads_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *enricherServiceClient) ListEnrichedRecords(ctx context.Context, in *ListEnrichedRecordsRequest, opts ...grpc.CallOption) (*ListEnrichedRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEnrichedRecordsResponse)
	err := c.cc.Invoke(ctx, EnricherService_ListEnrichedRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EnricherServiceServer is the server API for EnricherService service.
// All implementations must embed UnimplementedEnricherServiceServer
// for forward compatibility.
type EnricherServiceServer interface {
	// SubmitUpload persists a company-list file verbatim; it is enriched later
	// by the scheduler. Duplicate content for the same owner is deduplicated.
	SubmitUpload(context.Context, *SubmitUploadRequest) (*SubmitUploadResponse, error)
	// ProcessNow admits a pending upload immediately, bypassing the next tick.
	// Fails with ALREADY_EXISTS when the owner already has an active job.
	ProcessNow(context.Context, *ProcessNowRequest) (*ProcessNowResponse, error)
	// GetJobStatus returns the upload status plus the latest job progress snapshot.
	GetJobStatus(context.Context, *GetJobStatusRequest) (*GetJobStatusResponse, error)
	// ListUploads returns the owner's uploads with summary counts by status.
	ListUploads(context.Context, *ListUploadsRequest) (*ListUploadsResponse, error)
	// ListEnrichedRecords returns the enriched rows for a completed upload.
	ListEnrichedRecords(context.Context, *ListEnrichedRecordsRequest) (*ListEnrichedRecordsResponse, error)
	mustEmbedUnimplementedEnricherServiceServer()
}

// UnimplementedEnricherServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedEnricherServiceServer struct{}

func (UnimplementedEnricherServiceServer) SubmitUpload(context.Context, *SubmitUploadRequest) (*SubmitUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitUpload not implemented")
}
func (UnimplementedEnricherServiceServer) ProcessNow(context.Context, *ProcessNowRequest) (*ProcessNowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessNow not implemented")
}
func (UnimplementedEnricherServiceServer) GetJobStatus(context.Context, *GetJobStatusRequest) (*GetJobStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJobStatus not implemented")
}
func (UnimplementedEnricherServiceServer) ListUploads(context.Context, *ListUploadsRequest) (*ListUploadsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUploads not implemented")
}
func (UnimplementedEnricherServiceServer) ListEnrichedRecords(context.Context, *ListEnrichedRecordsRequest) (*ListEnrichedRecordsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEnrichedRecords not implemented")
}
func (UnimplementedEnricherServiceServer) mustEmbedUnimplementedEnricherServiceServer() {}
func (UnimplementedEnricherServiceServer) testEmbeddedByValue()                         {}

// UnsafeEnricherServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to EnricherServiceServer will
// result in compilation errors.
type UnsafeEnricherServiceServer interface {
	mustEmbedUnimplementedEnricherServiceServer()
}

func RegisterEnricherServiceServer(s grpc.ServiceRegistrar, srv EnricherServiceServer) {
	// If the following call pancis, it indicates UnimplementedEnricherServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&EnricherService_ServiceDesc, srv)
}

func _EnricherService_SubmitUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EnricherServiceServer).SubmitUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EnricherService_SubmitUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EnricherServiceServer).SubmitUpload(ctx, req.(*SubmitUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EnricherService_ProcessNow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessNowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EnricherServiceServer).ProcessNow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EnricherService_ProcessNow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EnricherServiceServer).ProcessNow(ctx, req.(*ProcessNowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EnricherService_GetJobStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EnricherServiceServer).GetJobStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EnricherService_GetJobStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EnricherServiceServer).GetJobStatus(ctx, req.(*GetJobStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EnricherService_ListUploads_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListUploadsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EnricherServiceServer).ListUploads(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EnricherService_ListUploads_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EnricherServiceServer).ListUploads(ctx, req.(*ListUploadsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EnricherService_ListEnrichedRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEnrichedRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EnricherServiceServer).ListEnrichedRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EnricherService_ListEnrichedRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EnricherServiceServer).ListEnrichedRecords(ctx, req.(*ListEnrichedRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EnricherService_ServiceDesc is the grpc.ServiceDesc for EnricherService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var EnricherService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "enricher.v1.EnricherService",
	HandlerType: (*EnricherServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitUpload",
			Handler:    _EnricherService_SubmitUpload_Handler,
		},
		{
			MethodName: "ProcessNow",
			Handler:    _EnricherService_ProcessNow_Handler,
		},
		{
			MethodName: "GetJobStatus",
			Handler:    _EnricherService_GetJobStatus_Handler,
		},
		{
			MethodName: "ListUploads",
			Handler:    _EnricherService_ListUploads_Handler,
		},
		{
			MethodName: "ListEnrichedRecords",
			Handler:    _EnricherService_ListEnrichedRecords_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "enricher/v1/enricher.proto",
}
