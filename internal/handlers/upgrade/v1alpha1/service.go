package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "equipbest.api.v1alpha1.UpgradeService"

// Full method names
const (
	UpgradeService_PlanSlot_FullMethodName       = "/" + ServiceName + "/PlanSlot"
	UpgradeService_EquipCharacter_FullMethodName = "/" + ServiceName + "/EquipCharacter"
	UpgradeService_GetSettings_FullMethodName    = "/" + ServiceName + "/GetSettings"
	UpgradeService_UpdateSettings_FullMethodName = "/" + ServiceName + "/UpdateSettings"
	UpgradeService_ListTransfers_FullMethodName  = "/" + ServiceName + "/ListTransfers"
	UpgradeService_ClearTransfers_FullMethodName = "/" + ServiceName + "/ClearTransfers"
)

// UpgradeServiceServer is the server API for UpgradeService. Requests and
// responses are JSON objects carried as google.protobuf.Struct.
type UpgradeServiceServer interface {
	PlanSlot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EquipCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSettings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateSettings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListTransfers(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearTransfers(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(UpgradeServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(UpgradeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(UpgradeServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// UpgradeService_ServiceDesc is the grpc.ServiceDesc for UpgradeService
var UpgradeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UpgradeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PlanSlot",
			Handler:    unaryHandler(UpgradeService_PlanSlot_FullMethodName, UpgradeServiceServer.PlanSlot),
		},
		{
			MethodName: "EquipCharacter",
			Handler:    unaryHandler(UpgradeService_EquipCharacter_FullMethodName, UpgradeServiceServer.EquipCharacter),
		},
		{
			MethodName: "GetSettings",
			Handler:    unaryHandler(UpgradeService_GetSettings_FullMethodName, UpgradeServiceServer.GetSettings),
		},
		{
			MethodName: "UpdateSettings",
			Handler:    unaryHandler(UpgradeService_UpdateSettings_FullMethodName, UpgradeServiceServer.UpdateSettings),
		},
		{
			MethodName: "ListTransfers",
			Handler:    unaryHandler(UpgradeService_ListTransfers_FullMethodName, UpgradeServiceServer.ListTransfers),
		},
		{
			MethodName: "ClearTransfers",
			Handler:    unaryHandler(UpgradeService_ClearTransfers_FullMethodName, UpgradeServiceServer.ClearTransfers),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "equipbest/api/v1alpha1/upgrade.proto",
}

// RegisterUpgradeServiceServer registers srv on s
func RegisterUpgradeServiceServer(s grpc.ServiceRegistrar, srv UpgradeServiceServer) {
	s.RegisterService(&UpgradeService_ServiceDesc, srv)
}

// UpgradeServiceClient is the client API for UpgradeService
type UpgradeServiceClient interface {
	PlanSlot(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	EquipCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetSettings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateSettings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListTransfers(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ClearTransfers(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type upgradeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewUpgradeServiceClient returns a client over cc
func NewUpgradeServiceClient(cc grpc.ClientConnInterface) UpgradeServiceClient {
	return &upgradeServiceClient{cc}
}

func (c *upgradeServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *upgradeServiceClient) PlanSlot(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UpgradeService_PlanSlot_FullMethodName, in, opts)
}

func (c *upgradeServiceClient) EquipCharacter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UpgradeService_EquipCharacter_FullMethodName, in, opts)
}

func (c *upgradeServiceClient) GetSettings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UpgradeService_GetSettings_FullMethodName, in, opts)
}

func (c *upgradeServiceClient) UpdateSettings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UpgradeService_UpdateSettings_FullMethodName, in, opts)
}

func (c *upgradeServiceClient) ListTransfers(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UpgradeService_ListTransfers_FullMethodName, in, opts)
}

func (c *upgradeServiceClient) ClearTransfers(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, UpgradeService_ClearTransfers_FullMethodName, in, opts)
}
