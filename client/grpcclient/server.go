package grpcclient

import (
	"context"

	"google.golang.org/grpc"
)

// StoreServer is the server-side contract of the store service. Server
// binaries, and the in-process servers of the tests, implement it and mount
// it with RegisterStoreServer.
type StoreServer interface {
	CurrentRoot(ctx context.Context, req *EmptyMsg) (*RootMsg, error)
	Get(ctx context.Context, req *KeyMsg) (*ItemMsg, error)
	Set(ctx context.Context, req *KVMsg) (*AckMsg, error)
	SetBatch(ctx context.Context, req *BatchMsg) (*AckMsg, error)
	SafeGet(ctx context.Context, req *SafeGetMsg) (*SafeItemMsg, error)
	SafeSet(ctx context.Context, req *SafeSetMsg) (*ProofMsg, error)
	Login(ctx context.Context, req *LoginMsg) (*TokenMsg, error)
	Logout(ctx context.Context, req *EmptyMsg) (*AckMsg, error)
}

// RegisterStoreServer registers the service implementation to the grpc
// server.
func RegisterStoreServer(reg grpc.ServiceRegistrar, srv StoreServer) {
	reg.RegisterService(&storeServiceDesc, srv)
}

// The service descriptor is written by hand as the wire contract is a set of
// plain messages on the json codec, with no generated stubs.
var storeServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*StoreServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CurrentRoot", Handler: currentRootHandler},
		{MethodName: "Get", Handler: getHandler},
		{MethodName: "Set", Handler: setHandler},
		{MethodName: "SetBatch", Handler: setBatchHandler},
		{MethodName: "SafeGet", Handler: safeGetHandler},
		{MethodName: "SafeSet", Handler: safeSetHandler},
		{MethodName: "Login", Handler: loginHandler},
		{MethodName: "Logout", Handler: logoutHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func currentRootHandler(srv interface{}, ctx context.Context,
	dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {

	req := new(EmptyMsg)
	err := dec(req)
	if err != nil {
		return nil, err
	}

	return srv.(StoreServer).CurrentRoot(ctx, req)
}

func getHandler(srv interface{}, ctx context.Context,
	dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {

	req := new(KeyMsg)
	err := dec(req)
	if err != nil {
		return nil, err
	}

	return srv.(StoreServer).Get(ctx, req)
}

func setHandler(srv interface{}, ctx context.Context,
	dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {

	req := new(KVMsg)
	err := dec(req)
	if err != nil {
		return nil, err
	}

	return srv.(StoreServer).Set(ctx, req)
}

func setBatchHandler(srv interface{}, ctx context.Context,
	dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {

	req := new(BatchMsg)
	err := dec(req)
	if err != nil {
		return nil, err
	}

	return srv.(StoreServer).SetBatch(ctx, req)
}

func safeGetHandler(srv interface{}, ctx context.Context,
	dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {

	req := new(SafeGetMsg)
	err := dec(req)
	if err != nil {
		return nil, err
	}

	return srv.(StoreServer).SafeGet(ctx, req)
}

func safeSetHandler(srv interface{}, ctx context.Context,
	dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {

	req := new(SafeSetMsg)
	err := dec(req)
	if err != nil {
		return nil, err
	}

	return srv.(StoreServer).SafeSet(ctx, req)
}

func loginHandler(srv interface{}, ctx context.Context,
	dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {

	req := new(LoginMsg)
	err := dec(req)
	if err != nil {
		return nil, err
	}

	return srv.(StoreServer).Login(ctx, req)
}

func logoutHandler(srv interface{}, ctx context.Context,
	dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {

	req := new(EmptyMsg)
	err := dec(req)
	if err != nil {
		return nil, err
	}

	return srv.(StoreServer).Logout(ctx, req)
}
