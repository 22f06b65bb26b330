package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "fieldboard.Board"

type BoardServer interface {
	Reset(context.Context, *Empty) (*Empty, error)
	Place(context.Context, *PlaceRequest) (*PlaceResponse, error)
	Put(context.Context, *PutRequest) (*PutResponse, error)
	Move(context.Context, *MoveRequest) (*MoveResponse, error)
	Remove(context.Context, *RemoveRequest) (*RemoveResponse, error)
	Refresh(context.Context, *Empty) (*Empty, error)
	Snapshot(context.Context, *Empty) (*SnapshotResponse, error)
}

func unary[Req, Resp any](method string, call func(BoardServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			bs := srv.(BoardServer)
			if interceptor == nil {
				return call(bs, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + method,
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(bs, ctx, req.(*Req))
			})
		},
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BoardServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Reset", BoardServer.Reset),
		unary("Place", BoardServer.Place),
		unary("Put", BoardServer.Put),
		unary("Move", BoardServer.Move),
		unary("Remove", BoardServer.Remove),
		unary("Refresh", BoardServer.Refresh),
		unary("Snapshot", BoardServer.Snapshot),
	},
	Streams: []grpc.StreamDesc{},
}

func Register(s *grpc.Server, srv BoardServer) {
	s.RegisterService(&serviceDesc, srv)
}
