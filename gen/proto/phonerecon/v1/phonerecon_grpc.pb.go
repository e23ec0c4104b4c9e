// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: proto/phonerecon/v1/phonerecon.proto

package phonereconv1

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
	ScreenshotService_RegisterScreenshot_FullMethodName = "/phonerecon.v1.ScreenshotService/RegisterScreenshot"
	ScreenshotService_RegisterDirectory_FullMethodName  = "/phonerecon.v1.ScreenshotService/RegisterDirectory"
	ScreenshotService_GetScreenshot_FullMethodName      = "/phonerecon.v1.ScreenshotService/GetScreenshot"
	ScreenshotService_ListScreenshots_FullMethodName    = "/phonerecon.v1.ScreenshotService/ListScreenshots"
	ScreenshotService_UpdateScreenshot_FullMethodName   = "/phonerecon.v1.ScreenshotService/UpdateScreenshot"
	ScreenshotService_DeleteScreenshot_FullMethodName   = "/phonerecon.v1.ScreenshotService/DeleteScreenshot"
)

// ScreenshotServiceClient is the client API for ScreenshotService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ScreenshotServiceClient interface {
	RegisterScreenshot(ctx context.Context, in *RegisterScreenshotRequest, opts ...grpc.CallOption) (*RegisterScreenshotResponse, error)
	RegisterDirectory(ctx context.Context, in *RegisterDirectoryRequest, opts ...grpc.CallOption) (*RegisterDirectoryResponse, error)
	GetScreenshot(ctx context.Context, in *GetScreenshotRequest, opts ...grpc.CallOption) (*GetScreenshotResponse, error)
	ListScreenshots(ctx context.Context, in *ListScreenshotsRequest, opts ...grpc.CallOption) (*ListScreenshotsResponse, error)
	UpdateScreenshot(ctx context.Context, in *UpdateScreenshotRequest, opts ...grpc.CallOption) (*UpdateScreenshotResponse, error)
	DeleteScreenshot(ctx context.Context, in *DeleteScreenshotRequest, opts ...grpc.CallOption) (*DeleteScreenshotResponse, error)
}

type screenshotServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewScreenshotServiceClient(cc grpc.ClientConnInterface) ScreenshotServiceClient {
	return &screenshotServiceClient{cc}
}

func (c *screenshotServiceClient) RegisterScreenshot(ctx context.Context, in *RegisterScreenshotRequest, opts ...grpc.CallOption) (*RegisterScreenshotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterScreenshotResponse)
	err := c.cc.Invoke(ctx, ScreenshotService_RegisterScreenshot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *screenshotServiceClient) RegisterDirectory(ctx context.Context, in *RegisterDirectoryRequest, opts ...grpc.CallOption) (*RegisterDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterDirectoryResponse)
	err := c.cc.Invoke(ctx, ScreenshotService_RegisterDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *screenshotServiceClient) GetScreenshot(ctx context.Context, in *GetScreenshotRequest, opts ...grpc.CallOption) (*GetScreenshotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetScreenshotResponse)
	err := c.cc.Invoke(ctx, ScreenshotService_GetScreenshot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *screenshotServiceClient) ListScreenshots(ctx context.Context, in *ListScreenshotsRequest, opts ...grpc.CallOption) (*ListScreenshotsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListScreenshotsResponse)
	err := c.cc.Invoke(ctx, ScreenshotService_ListScreenshots_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *screenshotServiceClient) UpdateScreenshot(ctx context.Context, in *UpdateScreenshotRequest, opts ...grpc.CallOption) (*UpdateScreenshotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateScreenshotResponse)
	err := c.cc.Invoke(ctx, ScreenshotService_UpdateScreenshot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *screenshotServiceClient) DeleteScreenshot(ctx context.Context, in *DeleteScreenshotRequest, opts ...grpc.CallOption) (*DeleteScreenshotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteScreenshotResponse)
	err := c.cc.Invoke(ctx, ScreenshotService_DeleteScreenshot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ScreenshotServiceServer is the server API for ScreenshotService service.
// All implementations must embed UnimplementedScreenshotServiceServer
// for forward compatibility.
type ScreenshotServiceServer interface {
	RegisterScreenshot(context.Context, *RegisterScreenshotRequest) (*RegisterScreenshotResponse, error)
	RegisterDirectory(context.Context, *RegisterDirectoryRequest) (*RegisterDirectoryResponse, error)
	GetScreenshot(context.Context, *GetScreenshotRequest) (*GetScreenshotResponse, error)
	ListScreenshots(context.Context, *ListScreenshotsRequest) (*ListScreenshotsResponse, error)
	UpdateScreenshot(context.Context, *UpdateScreenshotRequest) (*UpdateScreenshotResponse, error)
	DeleteScreenshot(context.Context, *DeleteScreenshotRequest) (*DeleteScreenshotResponse, error)
	mustEmbedUnimplementedScreenshotServiceServer()
}

// UnimplementedScreenshotServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedScreenshotServiceServer struct{}

func (UnimplementedScreenshotServiceServer) RegisterScreenshot(context.Context, *RegisterScreenshotRequest) (*RegisterScreenshotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterScreenshot not implemented")
}
func (UnimplementedScreenshotServiceServer) RegisterDirectory(context.Context, *RegisterDirectoryRequest) (*RegisterDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterDirectory not implemented")
}
func (UnimplementedScreenshotServiceServer) GetScreenshot(context.Context, *GetScreenshotRequest) (*GetScreenshotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScreenshot not implemented")
}
func (UnimplementedScreenshotServiceServer) ListScreenshots(context.Context, *ListScreenshotsRequest) (*ListScreenshotsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListScreenshots not implemented")
}
func (UnimplementedScreenshotServiceServer) UpdateScreenshot(context.Context, *UpdateScreenshotRequest) (*UpdateScreenshotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateScreenshot not implemented")
}
func (UnimplementedScreenshotServiceServer) DeleteScreenshot(context.Context, *DeleteScreenshotRequest) (*DeleteScreenshotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteScreenshot not implemented")
}
func (UnimplementedScreenshotServiceServer) mustEmbedUnimplementedScreenshotServiceServer() {}
func (UnimplementedScreenshotServiceServer) testEmbeddedByValue()                           {}

// UnsafeScreenshotServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ScreenshotServiceServer will
// result in compilation errors.
type UnsafeScreenshotServiceServer interface {
	mustEmbedUnimplementedScreenshotServiceServer()
}

func RegisterScreenshotServiceServer(s grpc.ServiceRegistrar, srv ScreenshotServiceServer) {
	// If the following call pancis, it indicates UnimplementedScreenshotServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ScreenshotService_ServiceDesc, srv)
}

func _ScreenshotService_RegisterScreenshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterScreenshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreenshotServiceServer).RegisterScreenshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScreenshotService_RegisterScreenshot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreenshotServiceServer).RegisterScreenshot(ctx, req.(*RegisterScreenshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScreenshotService_RegisterDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreenshotServiceServer).RegisterDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScreenshotService_RegisterDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreenshotServiceServer).RegisterDirectory(ctx, req.(*RegisterDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScreenshotService_GetScreenshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScreenshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreenshotServiceServer).GetScreenshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScreenshotService_GetScreenshot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreenshotServiceServer).GetScreenshot(ctx, req.(*GetScreenshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScreenshotService_ListScreenshots_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListScreenshotsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreenshotServiceServer).ListScreenshots(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScreenshotService_ListScreenshots_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreenshotServiceServer).ListScreenshots(ctx, req.(*ListScreenshotsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScreenshotService_UpdateScreenshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateScreenshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreenshotServiceServer).UpdateScreenshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScreenshotService_UpdateScreenshot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreenshotServiceServer).UpdateScreenshot(ctx, req.(*UpdateScreenshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScreenshotService_DeleteScreenshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteScreenshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScreenshotServiceServer).DeleteScreenshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScreenshotService_DeleteScreenshot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScreenshotServiceServer).DeleteScreenshot(ctx, req.(*DeleteScreenshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ScreenshotService_ServiceDesc is the grpc.ServiceDesc for ScreenshotService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ScreenshotService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "phonerecon.v1.ScreenshotService",
	HandlerType: (*ScreenshotServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterScreenshot",
			Handler:    _ScreenshotService_RegisterScreenshot_Handler,
		},
		{
			MethodName: "RegisterDirectory",
			Handler:    _ScreenshotService_RegisterDirectory_Handler,
		},
		{
			MethodName: "GetScreenshot",
			Handler:    _ScreenshotService_GetScreenshot_Handler,
		},
		{
			MethodName: "ListScreenshots",
			Handler:    _ScreenshotService_ListScreenshots_Handler,
		},
		{
			MethodName: "UpdateScreenshot",
			Handler:    _ScreenshotService_UpdateScreenshot_Handler,
		},
		{
			MethodName: "DeleteScreenshot",
			Handler:    _ScreenshotService_DeleteScreenshot_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/phonerecon/v1/phonerecon.proto",
}

const (
	ExtractionService_ExtractScreenshot_FullMethodName = "/phonerecon.v1.ExtractionService/ExtractScreenshot"
	ExtractionService_ExtractBatch_FullMethodName      = "/phonerecon.v1.ExtractionService/ExtractBatch"
)

// ExtractionServiceClient is the client API for ExtractionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExtractionServiceClient interface {
	ExtractScreenshot(ctx context.Context, in *ExtractScreenshotRequest, opts ...grpc.CallOption) (*ExtractScreenshotResponse, error)
	ExtractBatch(ctx context.Context, in *ExtractBatchRequest, opts ...grpc.CallOption) (*ExtractBatchResponse, error)
}

type extractionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionServiceClient(cc grpc.ClientConnInterface) ExtractionServiceClient {
	return &extractionServiceClient{cc}
}

func (c *extractionServiceClient) ExtractScreenshot(ctx context.Context, in *ExtractScreenshotRequest, opts ...grpc.CallOption) (*ExtractScreenshotResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractScreenshotResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ExtractScreenshot_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ExtractBatch(ctx context.Context, in *ExtractBatchRequest, opts ...grpc.CallOption) (*ExtractBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractBatchResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ExtractBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionServiceServer is the server API for ExtractionService service.
// All implementations must embed UnimplementedExtractionServiceServer
// for forward compatibility.
type ExtractionServiceServer interface {
	ExtractScreenshot(context.Context, *ExtractScreenshotRequest) (*ExtractScreenshotResponse, error)
	ExtractBatch(context.Context, *ExtractBatchRequest) (*ExtractBatchResponse, error)
	mustEmbedUnimplementedExtractionServiceServer()
}

// UnimplementedExtractionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionServiceServer struct{}

func (UnimplementedExtractionServiceServer) ExtractScreenshot(context.Context, *ExtractScreenshotRequest) (*ExtractScreenshotResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractScreenshot not implemented")
}
func (UnimplementedExtractionServiceServer) ExtractBatch(context.Context, *ExtractBatchRequest) (*ExtractBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractBatch not implemented")
}
func (UnimplementedExtractionServiceServer) mustEmbedUnimplementedExtractionServiceServer() {}
func (UnimplementedExtractionServiceServer) testEmbeddedByValue()                           {}

// UnsafeExtractionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionServiceServer will
// result in compilation errors.
type UnsafeExtractionServiceServer interface {
	mustEmbedUnimplementedExtractionServiceServer()
}

func RegisterExtractionServiceServer(s grpc.ServiceRegistrar, srv ExtractionServiceServer) {
	// If the following call pancis, it indicates UnimplementedExtractionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionService_ServiceDesc, srv)
}

func _ExtractionService_ExtractScreenshot_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractScreenshotRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ExtractScreenshot(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ExtractScreenshot_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ExtractScreenshot(ctx, req.(*ExtractScreenshotRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ExtractBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ExtractBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ExtractBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ExtractBatch(ctx, req.(*ExtractBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionService_ServiceDesc is the grpc.ServiceDesc for ExtractionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "phonerecon.v1.ExtractionService",
	HandlerType: (*ExtractionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractScreenshot",
			Handler:    _ExtractionService_ExtractScreenshot_Handler,
		},
		{
			MethodName: "ExtractBatch",
			Handler:    _ExtractionService_ExtractBatch_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/phonerecon/v1/phonerecon.proto",
}

const (
	NumberService_ListNumbers_FullMethodName    = "/phonerecon.v1.NumberService/ListNumbers"
	NumberService_GetNumberStats_FullMethodName = "/phonerecon.v1.NumberService/GetNumberStats"
	NumberService_ListDuplicates_FullMethodName = "/phonerecon.v1.NumberService/ListDuplicates"
	NumberService_DeleteNumbers_FullMethodName  = "/phonerecon.v1.NumberService/DeleteNumbers"
)

// NumberServiceClient is the client API for NumberService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type NumberServiceClient interface {
	ListNumbers(ctx context.Context, in *ListNumbersRequest, opts ...grpc.CallOption) (*ListNumbersResponse, error)
	GetNumberStats(ctx context.Context, in *GetNumberStatsRequest, opts ...grpc.CallOption) (*GetNumberStatsResponse, error)
	ListDuplicates(ctx context.Context, in *ListDuplicatesRequest, opts ...grpc.CallOption) (*ListDuplicatesResponse, error)
	DeleteNumbers(ctx context.Context, in *DeleteNumbersRequest, opts ...grpc.CallOption) (*DeleteNumbersResponse, error)
}

type numberServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNumberServiceClient(cc grpc.ClientConnInterface) NumberServiceClient {
	return &numberServiceClient{cc}
}

func (c *numberServiceClient) ListNumbers(ctx context.Context, in *ListNumbersRequest, opts ...grpc.CallOption) (*ListNumbersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListNumbersResponse)
	err := c.cc.Invoke(ctx, NumberService_ListNumbers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *numberServiceClient) GetNumberStats(ctx context.Context, in *GetNumberStatsRequest, opts ...grpc.CallOption) (*GetNumberStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetNumberStatsResponse)
	err := c.cc.Invoke(ctx, NumberService_GetNumberStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *numberServiceClient) ListDuplicates(ctx context.Context, in *ListDuplicatesRequest, opts ...grpc.CallOption) (*ListDuplicatesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDuplicatesResponse)
	err := c.cc.Invoke(ctx, NumberService_ListDuplicates_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *numberServiceClient) DeleteNumbers(ctx context.Context, in *DeleteNumbersRequest, opts ...grpc.CallOption) (*DeleteNumbersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteNumbersResponse)
	err := c.cc.Invoke(ctx, NumberService_DeleteNumbers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NumberServiceServer is the server API for NumberService service.
// All implementations must embed UnimplementedNumberServiceServer
// for forward compatibility.
type NumberServiceServer interface {
	ListNumbers(context.Context, *ListNumbersRequest) (*ListNumbersResponse, error)
	GetNumberStats(context.Context, *GetNumberStatsRequest) (*GetNumberStatsResponse, error)
	ListDuplicates(context.Context, *ListDuplicatesRequest) (*ListDuplicatesResponse, error)
	DeleteNumbers(context.Context, *DeleteNumbersRequest) (*DeleteNumbersResponse, error)
	mustEmbedUnimplementedNumberServiceServer()
}

// UnimplementedNumberServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedNumberServiceServer struct{}

func (UnimplementedNumberServiceServer) ListNumbers(context.Context, *ListNumbersRequest) (*ListNumbersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListNumbers not implemented")
}
func (UnimplementedNumberServiceServer) GetNumberStats(context.Context, *GetNumberStatsRequest) (*GetNumberStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetNumberStats not implemented")
}
func (UnimplementedNumberServiceServer) ListDuplicates(context.Context, *ListDuplicatesRequest) (*ListDuplicatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDuplicates not implemented")
}
func (UnimplementedNumberServiceServer) DeleteNumbers(context.Context, *DeleteNumbersRequest) (*DeleteNumbersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteNumbers not implemented")
}
func (UnimplementedNumberServiceServer) mustEmbedUnimplementedNumberServiceServer() {}
func (UnimplementedNumberServiceServer) testEmbeddedByValue()                       {}

// UnsafeNumberServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to NumberServiceServer will
// result in compilation errors.
type UnsafeNumberServiceServer interface {
	mustEmbedUnimplementedNumberServiceServer()
}

func RegisterNumberServiceServer(s grpc.ServiceRegistrar, srv NumberServiceServer) {
	// If the following call pancis, it indicates UnimplementedNumberServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&NumberService_ServiceDesc, srv)
}

func _NumberService_ListNumbers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListNumbersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NumberServiceServer).ListNumbers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NumberService_ListNumbers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NumberServiceServer).ListNumbers(ctx, req.(*ListNumbersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NumberService_GetNumberStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNumberStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NumberServiceServer).GetNumberStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NumberService_GetNumberStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NumberServiceServer).GetNumberStats(ctx, req.(*GetNumberStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NumberService_ListDuplicates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDuplicatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NumberServiceServer).ListDuplicates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NumberService_ListDuplicates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NumberServiceServer).ListDuplicates(ctx, req.(*ListDuplicatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NumberService_DeleteNumbers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteNumbersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NumberServiceServer).DeleteNumbers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NumberService_DeleteNumbers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NumberServiceServer).DeleteNumbers(ctx, req.(*DeleteNumbersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NumberService_ServiceDesc is the grpc.ServiceDesc for NumberService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var NumberService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "phonerecon.v1.NumberService",
	HandlerType: (*NumberServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListNumbers",
			Handler:    _NumberService_ListNumbers_Handler,
		},
		{
			MethodName: "GetNumberStats",
			Handler:    _NumberService_GetNumberStats_Handler,
		},
		{
			MethodName: "ListDuplicates",
			Handler:    _NumberService_ListDuplicates_Handler,
		},
		{
			MethodName: "DeleteNumbers",
			Handler:    _NumberService_DeleteNumbers_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/phonerecon/v1/phonerecon.proto",
}

const (
	GroupService_CreateGroup_FullMethodName            = "/phonerecon.v1.GroupService/CreateGroup"
	GroupService_GetGroup_FullMethodName               = "/phonerecon.v1.GroupService/GetGroup"
	GroupService_ListGroups_FullMethodName             = "/phonerecon.v1.GroupService/ListGroups"
	GroupService_UpdateGroup_FullMethodName            = "/phonerecon.v1.GroupService/UpdateGroup"
	GroupService_DeleteGroup_FullMethodName            = "/phonerecon.v1.GroupService/DeleteGroup"
	GroupService_AddNumbersToGroup_FullMethodName      = "/phonerecon.v1.GroupService/AddNumbersToGroup"
	GroupService_RemoveNumbersFromGroup_FullMethodName = "/phonerecon.v1.GroupService/RemoveNumbersFromGroup"
	GroupService_ListGroupNumbers_FullMethodName       = "/phonerecon.v1.GroupService/ListGroupNumbers"
)

// GroupServiceClient is the client API for GroupService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type GroupServiceClient interface {
	CreateGroup(ctx context.Context, in *CreateGroupRequest, opts ...grpc.CallOption) (*CreateGroupResponse, error)
	GetGroup(ctx context.Context, in *GetGroupRequest, opts ...grpc.CallOption) (*GetGroupResponse, error)
	ListGroups(ctx context.Context, in *ListGroupsRequest, opts ...grpc.CallOption) (*ListGroupsResponse, error)
	UpdateGroup(ctx context.Context, in *UpdateGroupRequest, opts ...grpc.CallOption) (*UpdateGroupResponse, error)
	DeleteGroup(ctx context.Context, in *DeleteGroupRequest, opts ...grpc.CallOption) (*DeleteGroupResponse, error)
	AddNumbersToGroup(ctx context.Context, in *AddNumbersToGroupRequest, opts ...grpc.CallOption) (*AddNumbersToGroupResponse, error)
	RemoveNumbersFromGroup(ctx context.Context, in *RemoveNumbersFromGroupRequest, opts ...grpc.CallOption) (*RemoveNumbersFromGroupResponse, error)
	ListGroupNumbers(ctx context.Context, in *ListGroupNumbersRequest, opts ...grpc.CallOption) (*ListGroupNumbersResponse, error)
}

type groupServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGroupServiceClient(cc grpc.ClientConnInterface) GroupServiceClient {
	return &groupServiceClient{cc}
}

func (c *groupServiceClient) CreateGroup(ctx context.Context, in *CreateGroupRequest, opts ...grpc.CallOption) (*CreateGroupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateGroupResponse)
	err := c.cc.Invoke(ctx, GroupService_CreateGroup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupServiceClient) GetGroup(ctx context.Context, in *GetGroupRequest, opts ...grpc.CallOption) (*GetGroupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetGroupResponse)
	err := c.cc.Invoke(ctx, GroupService_GetGroup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupServiceClient) ListGroups(ctx context.Context, in *ListGroupsRequest, opts ...grpc.CallOption) (*ListGroupsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListGroupsResponse)
	err := c.cc.Invoke(ctx, GroupService_ListGroups_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupServiceClient) UpdateGroup(ctx context.Context, in *UpdateGroupRequest, opts ...grpc.CallOption) (*UpdateGroupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateGroupResponse)
	err := c.cc.Invoke(ctx, GroupService_UpdateGroup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupServiceClient) DeleteGroup(ctx context.Context, in *DeleteGroupRequest, opts ...grpc.CallOption) (*DeleteGroupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteGroupResponse)
	err := c.cc.Invoke(ctx, GroupService_DeleteGroup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupServiceClient) AddNumbersToGroup(ctx context.Context, in *AddNumbersToGroupRequest, opts ...grpc.CallOption) (*AddNumbersToGroupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddNumbersToGroupResponse)
	err := c.cc.Invoke(ctx, GroupService_AddNumbersToGroup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupServiceClient) RemoveNumbersFromGroup(ctx context.Context, in *RemoveNumbersFromGroupRequest, opts ...grpc.CallOption) (*RemoveNumbersFromGroupResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveNumbersFromGroupResponse)
	err := c.cc.Invoke(ctx, GroupService_RemoveNumbersFromGroup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *groupServiceClient) ListGroupNumbers(ctx context.Context, in *ListGroupNumbersRequest, opts ...grpc.CallOption) (*ListGroupNumbersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListGroupNumbersResponse)
	err := c.cc.Invoke(ctx, GroupService_ListGroupNumbers_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GroupServiceServer is the server API for GroupService service.
// All implementations must embed UnimplementedGroupServiceServer
// for forward compatibility.
type GroupServiceServer interface {
	CreateGroup(context.Context, *CreateGroupRequest) (*CreateGroupResponse, error)
	GetGroup(context.Context, *GetGroupRequest) (*GetGroupResponse, error)
	ListGroups(context.Context, *ListGroupsRequest) (*ListGroupsResponse, error)
	UpdateGroup(context.Context, *UpdateGroupRequest) (*UpdateGroupResponse, error)
	DeleteGroup(context.Context, *DeleteGroupRequest) (*DeleteGroupResponse, error)
	AddNumbersToGroup(context.Context, *AddNumbersToGroupRequest) (*AddNumbersToGroupResponse, error)
	RemoveNumbersFromGroup(context.Context, *RemoveNumbersFromGroupRequest) (*RemoveNumbersFromGroupResponse, error)
	ListGroupNumbers(context.Context, *ListGroupNumbersRequest) (*ListGroupNumbersResponse, error)
	mustEmbedUnimplementedGroupServiceServer()
}

// UnimplementedGroupServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedGroupServiceServer struct{}

func (UnimplementedGroupServiceServer) CreateGroup(context.Context, *CreateGroupRequest) (*CreateGroupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateGroup not implemented")
}
func (UnimplementedGroupServiceServer) GetGroup(context.Context, *GetGroupRequest) (*GetGroupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetGroup not implemented")
}
func (UnimplementedGroupServiceServer) ListGroups(context.Context, *ListGroupsRequest) (*ListGroupsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListGroups not implemented")
}
func (UnimplementedGroupServiceServer) UpdateGroup(context.Context, *UpdateGroupRequest) (*UpdateGroupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateGroup not implemented")
}
func (UnimplementedGroupServiceServer) DeleteGroup(context.Context, *DeleteGroupRequest) (*DeleteGroupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteGroup not implemented")
}
func (UnimplementedGroupServiceServer) AddNumbersToGroup(context.Context, *AddNumbersToGroupRequest) (*AddNumbersToGroupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddNumbersToGroup not implemented")
}
func (UnimplementedGroupServiceServer) RemoveNumbersFromGroup(context.Context, *RemoveNumbersFromGroupRequest) (*RemoveNumbersFromGroupResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveNumbersFromGroup not implemented")
}
func (UnimplementedGroupServiceServer) ListGroupNumbers(context.Context, *ListGroupNumbersRequest) (*ListGroupNumbersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListGroupNumbers not implemented")
}
func (UnimplementedGroupServiceServer) mustEmbedUnimplementedGroupServiceServer() {}
func (UnimplementedGroupServiceServer) testEmbeddedByValue()                      {}

// UnsafeGroupServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to GroupServiceServer will
// result in compilation errors.
type UnsafeGroupServiceServer interface {
	mustEmbedUnimplementedGroupServiceServer()
}

func RegisterGroupServiceServer(s grpc.ServiceRegistrar, srv GroupServiceServer) {
	// If the following call pancis, it indicates UnimplementedGroupServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&GroupService_ServiceDesc, srv)
}

func _GroupService_CreateGroup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateGroupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupServiceServer).CreateGroup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GroupService_CreateGroup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupServiceServer).CreateGroup(ctx, req.(*CreateGroupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupService_GetGroup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetGroupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupServiceServer).GetGroup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GroupService_GetGroup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupServiceServer).GetGroup(ctx, req.(*GetGroupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupService_ListGroups_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListGroupsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupServiceServer).ListGroups(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GroupService_ListGroups_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupServiceServer).ListGroups(ctx, req.(*ListGroupsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupService_UpdateGroup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateGroupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupServiceServer).UpdateGroup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GroupService_UpdateGroup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupServiceServer).UpdateGroup(ctx, req.(*UpdateGroupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupService_DeleteGroup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteGroupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupServiceServer).DeleteGroup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GroupService_DeleteGroup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupServiceServer).DeleteGroup(ctx, req.(*DeleteGroupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupService_AddNumbersToGroup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddNumbersToGroupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupServiceServer).AddNumbersToGroup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GroupService_AddNumbersToGroup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupServiceServer).AddNumbersToGroup(ctx, req.(*AddNumbersToGroupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupService_RemoveNumbersFromGroup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveNumbersFromGroupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupServiceServer).RemoveNumbersFromGroup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GroupService_RemoveNumbersFromGroup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupServiceServer).RemoveNumbersFromGroup(ctx, req.(*RemoveNumbersFromGroupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GroupService_ListGroupNumbers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListGroupNumbersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GroupServiceServer).ListGroupNumbers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GroupService_ListGroupNumbers_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GroupServiceServer).ListGroupNumbers(ctx, req.(*ListGroupNumbersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// GroupService_ServiceDesc is the grpc.ServiceDesc for GroupService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var GroupService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "phonerecon.v1.GroupService",
	HandlerType: (*GroupServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateGroup",
			Handler:    _GroupService_CreateGroup_Handler,
		},
		{
			MethodName: "GetGroup",
			Handler:    _GroupService_GetGroup_Handler,
		},
		{
			MethodName: "ListGroups",
			Handler:    _GroupService_ListGroups_Handler,
		},
		{
			MethodName: "UpdateGroup",
			Handler:    _GroupService_UpdateGroup_Handler,
		},
		{
			MethodName: "DeleteGroup",
			Handler:    _GroupService_DeleteGroup_Handler,
		},
		{
			MethodName: "AddNumbersToGroup",
			Handler:    _GroupService_AddNumbersToGroup_Handler,
		},
		{
			MethodName: "RemoveNumbersFromGroup",
			Handler:    _GroupService_RemoveNumbersFromGroup_Handler,
		},
		{
			MethodName: "ListGroupNumbers",
			Handler:    _GroupService_ListGroupNumbers_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/phonerecon/v1/phonerecon.proto",
}

const (
	ContactService_PreviewImport_FullMethodName  = "/phonerecon.v1.ContactService/PreviewImport"
	ContactService_ImportContacts_FullMethodName = "/phonerecon.v1.ContactService/ImportContacts"
	ContactService_ListContacts_FullMethodName   = "/phonerecon.v1.ContactService/ListContacts"
	ContactService_ClearContacts_FullMethodName  = "/phonerecon.v1.ContactService/ClearContacts"
)

// ContactServiceClient is the client API for ContactService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ContactServiceClient interface {
	PreviewImport(ctx context.Context, in *PreviewImportRequest, opts ...grpc.CallOption) (*PreviewImportResponse, error)
	ImportContacts(ctx context.Context, in *ImportContactsRequest, opts ...grpc.CallOption) (*ImportContactsResponse, error)
	ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error)
	ClearContacts(ctx context.Context, in *ClearContactsRequest, opts ...grpc.CallOption) (*ClearContactsResponse, error)
}

type contactServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewContactServiceClient(cc grpc.ClientConnInterface) ContactServiceClient {
	return &contactServiceClient{cc}
}

func (c *contactServiceClient) PreviewImport(ctx context.Context, in *PreviewImportRequest, opts ...grpc.CallOption) (*PreviewImportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PreviewImportResponse)
	err := c.cc.Invoke(ctx, ContactService_PreviewImport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contactServiceClient) ImportContacts(ctx context.Context, in *ImportContactsRequest, opts ...grpc.CallOption) (*ImportContactsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportContactsResponse)
	err := c.cc.Invoke(ctx, ContactService_ImportContacts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contactServiceClient) ListContacts(ctx context.Context, in *ListContactsRequest, opts ...grpc.CallOption) (*ListContactsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListContactsResponse)
	err := c.cc.Invoke(ctx, ContactService_ListContacts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contactServiceClient) ClearContacts(ctx context.Context, in *ClearContactsRequest, opts ...grpc.CallOption) (*ClearContactsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClearContactsResponse)
	err := c.cc.Invoke(ctx, ContactService_ClearContacts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ContactServiceServer is the server API for ContactService service.
// All implementations must embed UnimplementedContactServiceServer
// for forward compatibility.
type ContactServiceServer interface {
	PreviewImport(context.Context, *PreviewImportRequest) (*PreviewImportResponse, error)
	ImportContacts(context.Context, *ImportContactsRequest) (*ImportContactsResponse, error)
	ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error)
	ClearContacts(context.Context, *ClearContactsRequest) (*ClearContactsResponse, error)
	mustEmbedUnimplementedContactServiceServer()
}

// UnimplementedContactServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedContactServiceServer struct{}

func (UnimplementedContactServiceServer) PreviewImport(context.Context, *PreviewImportRequest) (*PreviewImportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewImport not implemented")
}
func (UnimplementedContactServiceServer) ImportContacts(context.Context, *ImportContactsRequest) (*ImportContactsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportContacts not implemented")
}
func (UnimplementedContactServiceServer) ListContacts(context.Context, *ListContactsRequest) (*ListContactsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListContacts not implemented")
}
func (UnimplementedContactServiceServer) ClearContacts(context.Context, *ClearContactsRequest) (*ClearContactsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearContacts not implemented")
}
func (UnimplementedContactServiceServer) mustEmbedUnimplementedContactServiceServer() {}
func (UnimplementedContactServiceServer) testEmbeddedByValue()                        {}

// UnsafeContactServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ContactServiceServer will
// result in compilation errors.
type UnsafeContactServiceServer interface {
	mustEmbedUnimplementedContactServiceServer()
}

func RegisterContactServiceServer(s grpc.ServiceRegistrar, srv ContactServiceServer) {
	// If the following call pancis, it indicates UnimplementedContactServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ContactService_ServiceDesc, srv)
}

func _ContactService_PreviewImport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreviewImportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContactServiceServer).PreviewImport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContactService_PreviewImport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContactServiceServer).PreviewImport(ctx, req.(*PreviewImportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContactService_ImportContacts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportContactsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContactServiceServer).ImportContacts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContactService_ImportContacts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContactServiceServer).ImportContacts(ctx, req.(*ImportContactsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContactService_ListContacts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListContactsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContactServiceServer).ListContacts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContactService_ListContacts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContactServiceServer).ListContacts(ctx, req.(*ListContactsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContactService_ClearContacts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearContactsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContactServiceServer).ClearContacts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContactService_ClearContacts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContactServiceServer).ClearContacts(ctx, req.(*ClearContactsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ContactService_ServiceDesc is the grpc.ServiceDesc for ContactService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ContactService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "phonerecon.v1.ContactService",
	HandlerType: (*ContactServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PreviewImport",
			Handler:    _ContactService_PreviewImport_Handler,
		},
		{
			MethodName: "ImportContacts",
			Handler:    _ContactService_ImportContacts_Handler,
		},
		{
			MethodName: "ListContacts",
			Handler:    _ContactService_ListContacts_Handler,
		},
		{
			MethodName: "ClearContacts",
			Handler:    _ContactService_ClearContacts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/phonerecon/v1/phonerecon.proto",
}

const (
	ComparisonService_RunComparison_FullMethodName       = "/phonerecon.v1.ComparisonService/RunComparison"
	ComparisonService_GetLatestStats_FullMethodName      = "/phonerecon.v1.ComparisonService/GetLatestStats"
	ComparisonService_ListClassifications_FullMethodName = "/phonerecon.v1.ComparisonService/ListClassifications"
)

// ComparisonServiceClient is the client API for ComparisonService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ComparisonServiceClient interface {
	RunComparison(ctx context.Context, in *RunComparisonRequest, opts ...grpc.CallOption) (*RunComparisonResponse, error)
	GetLatestStats(ctx context.Context, in *GetLatestStatsRequest, opts ...grpc.CallOption) (*GetLatestStatsResponse, error)
	ListClassifications(ctx context.Context, in *ListClassificationsRequest, opts ...grpc.CallOption) (*ListClassificationsResponse, error)
}

type comparisonServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewComparisonServiceClient(cc grpc.ClientConnInterface) ComparisonServiceClient {
	return &comparisonServiceClient{cc}
}

func (c *comparisonServiceClient) RunComparison(ctx context.Context, in *RunComparisonRequest, opts ...grpc.CallOption) (*RunComparisonResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunComparisonResponse)
	err := c.cc.Invoke(ctx, ComparisonService_RunComparison_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *comparisonServiceClient) GetLatestStats(ctx context.Context, in *GetLatestStatsRequest, opts ...grpc.CallOption) (*GetLatestStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLatestStatsResponse)
	err := c.cc.Invoke(ctx, ComparisonService_GetLatestStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *comparisonServiceClient) ListClassifications(ctx context.Context, in *ListClassificationsRequest, opts ...grpc.CallOption) (*ListClassificationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListClassificationsResponse)
	err := c.cc.Invoke(ctx, ComparisonService_ListClassifications_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ComparisonServiceServer is the server API for ComparisonService service.
// All implementations must embed UnimplementedComparisonServiceServer
// for forward compatibility.
type ComparisonServiceServer interface {
	RunComparison(context.Context, *RunComparisonRequest) (*RunComparisonResponse, error)
	GetLatestStats(context.Context, *GetLatestStatsRequest) (*GetLatestStatsResponse, error)
	ListClassifications(context.Context, *ListClassificationsRequest) (*ListClassificationsResponse, error)
	mustEmbedUnimplementedComparisonServiceServer()
}

// UnimplementedComparisonServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedComparisonServiceServer struct{}

func (UnimplementedComparisonServiceServer) RunComparison(context.Context, *RunComparisonRequest) (*RunComparisonResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunComparison not implemented")
}
func (UnimplementedComparisonServiceServer) GetLatestStats(context.Context, *GetLatestStatsRequest) (*GetLatestStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLatestStats not implemented")
}
func (UnimplementedComparisonServiceServer) ListClassifications(context.Context, *ListClassificationsRequest) (*ListClassificationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClassifications not implemented")
}
func (UnimplementedComparisonServiceServer) mustEmbedUnimplementedComparisonServiceServer() {}
func (UnimplementedComparisonServiceServer) testEmbeddedByValue()                           {}

// UnsafeComparisonServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ComparisonServiceServer will
// result in compilation errors.
type UnsafeComparisonServiceServer interface {
	mustEmbedUnimplementedComparisonServiceServer()
}

func RegisterComparisonServiceServer(s grpc.ServiceRegistrar, srv ComparisonServiceServer) {
	// If the following call pancis, it indicates UnimplementedComparisonServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ComparisonService_ServiceDesc, srv)
}

func _ComparisonService_RunComparison_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunComparisonRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComparisonServiceServer).RunComparison(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComparisonService_RunComparison_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComparisonServiceServer).RunComparison(ctx, req.(*RunComparisonRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComparisonService_GetLatestStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLatestStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComparisonServiceServer).GetLatestStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComparisonService_GetLatestStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComparisonServiceServer).GetLatestStats(ctx, req.(*GetLatestStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComparisonService_ListClassifications_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListClassificationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComparisonServiceServer).ListClassifications(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ComparisonService_ListClassifications_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComparisonServiceServer).ListClassifications(ctx, req.(*ListClassificationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ComparisonService_ServiceDesc is the grpc.ServiceDesc for ComparisonService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ComparisonService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "phonerecon.v1.ComparisonService",
	HandlerType: (*ComparisonServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunComparison",
			Handler:    _ComparisonService_RunComparison_Handler,
		},
		{
			MethodName: "GetLatestStats",
			Handler:    _ComparisonService_GetLatestStats_Handler,
		},
		{
			MethodName: "ListClassifications",
			Handler:    _ComparisonService_ListClassifications_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/phonerecon/v1/phonerecon.proto",
}

const (
	ExportService_ExportNumbersCSV_FullMethodName    = "/phonerecon.v1.ExportService/ExportNumbersCSV"
	ExportService_ExportNumbersXLSX_FullMethodName   = "/phonerecon.v1.ExportService/ExportNumbersXLSX"
	ExportService_ExportComparisonCSV_FullMethodName = "/phonerecon.v1.ExportService/ExportComparisonCSV"
	ExportService_ExportNewNumbersCSV_FullMethodName = "/phonerecon.v1.ExportService/ExportNewNumbersCSV"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportNumbersCSV(ctx context.Context, in *ExportNumbersCSVRequest, opts ...grpc.CallOption) (*ExportNumbersCSVResponse, error)
	ExportNumbersXLSX(ctx context.Context, in *ExportNumbersXLSXRequest, opts ...grpc.CallOption) (*ExportNumbersXLSXResponse, error)
	ExportComparisonCSV(ctx context.Context, in *ExportComparisonCSVRequest, opts ...grpc.CallOption) (*ExportComparisonCSVResponse, error)
	ExportNewNumbersCSV(ctx context.Context, in *ExportNewNumbersCSVRequest, opts ...grpc.CallOption) (*ExportNewNumbersCSVResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportNumbersCSV(ctx context.Context, in *ExportNumbersCSVRequest, opts ...grpc.CallOption) (*ExportNumbersCSVResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportNumbersCSVResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportNumbersCSV_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportNumbersXLSX(ctx context.Context, in *ExportNumbersXLSXRequest, opts ...grpc.CallOption) (*ExportNumbersXLSXResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportNumbersXLSXResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportNumbersXLSX_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportComparisonCSV(ctx context.Context, in *ExportComparisonCSVRequest, opts ...grpc.CallOption) (*ExportComparisonCSVResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportComparisonCSVResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportComparisonCSV_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportNewNumbersCSV(ctx context.Context, in *ExportNewNumbersCSVRequest, opts ...grpc.CallOption) (*ExportNewNumbersCSVResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportNewNumbersCSVResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportNewNumbersCSV_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportNumbersCSV(context.Context, *ExportNumbersCSVRequest) (*ExportNumbersCSVResponse, error)
	ExportNumbersXLSX(context.Context, *ExportNumbersXLSXRequest) (*ExportNumbersXLSXResponse, error)
	ExportComparisonCSV(context.Context, *ExportComparisonCSVRequest) (*ExportComparisonCSVResponse, error)
	ExportNewNumbersCSV(context.Context, *ExportNewNumbersCSVRequest) (*ExportNewNumbersCSVResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportNumbersCSV(context.Context, *ExportNumbersCSVRequest) (*ExportNumbersCSVResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportNumbersCSV not implemented")
}
func (UnimplementedExportServiceServer) ExportNumbersXLSX(context.Context, *ExportNumbersXLSXRequest) (*ExportNumbersXLSXResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportNumbersXLSX not implemented")
}
func (UnimplementedExportServiceServer) ExportComparisonCSV(context.Context, *ExportComparisonCSVRequest) (*ExportComparisonCSVResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportComparisonCSV not implemented")
}
func (UnimplementedExportServiceServer) ExportNewNumbersCSV(context.Context, *ExportNewNumbersCSVRequest) (*ExportNewNumbersCSVResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportNewNumbersCSV not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportNumbersCSV_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportNumbersCSVRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportNumbersCSV(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportNumbersCSV_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportNumbersCSV(ctx, req.(*ExportNumbersCSVRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportNumbersXLSX_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportNumbersXLSXRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportNumbersXLSX(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportNumbersXLSX_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportNumbersXLSX(ctx, req.(*ExportNumbersXLSXRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportComparisonCSV_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportComparisonCSVRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportComparisonCSV(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportComparisonCSV_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportComparisonCSV(ctx, req.(*ExportComparisonCSVRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportNewNumbersCSV_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportNewNumbersCSVRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportNewNumbersCSV(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportNewNumbersCSV_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportNewNumbersCSV(ctx, req.(*ExportNewNumbersCSVRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "phonerecon.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportNumbersCSV",
			Handler:    _ExportService_ExportNumbersCSV_Handler,
		},
		{
			MethodName: "ExportNumbersXLSX",
			Handler:    _ExportService_ExportNumbersXLSX_Handler,
		},
		{
			MethodName: "ExportComparisonCSV",
			Handler:    _ExportService_ExportComparisonCSV_Handler,
		},
		{
			MethodName: "ExportNewNumbersCSV",
			Handler:    _ExportService_ExportNewNumbersCSV_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/phonerecon/v1/phonerecon.proto",
}
