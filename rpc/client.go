package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/nelhage/fieldboard/board"
)

type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Dial connects to a fieldboard server without transport security.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)
	return grpc.Dial(addr, opts...)
}

func (c *Client) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...)
}

func (c *Client) Reset(ctx context.Context, opts ...grpc.CallOption) error {
	return c.invoke(ctx, "Reset", &Empty{}, &Empty{}, opts)
}

func (c *Client) Place(ctx context.Context, in *PlaceRequest, opts ...grpc.CallOption) (*PlaceResponse, error) {
	out := new(PlaceResponse)
	if err := c.invoke(ctx, "Place", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Put(ctx context.Context, in *PutRequest, opts ...grpc.CallOption) (*PutResponse, error) {
	out := new(PutResponse)
	if err := c.invoke(ctx, "Put", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Move(ctx context.Context, in *MoveRequest, opts ...grpc.CallOption) (*MoveResponse, error) {
	out := new(MoveResponse)
	if err := c.invoke(ctx, "Move", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Remove(ctx context.Context, in *RemoveRequest, opts ...grpc.CallOption) (*RemoveResponse, error) {
	out := new(RemoveResponse)
	if err := c.invoke(ctx, "Remove", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Refresh(ctx context.Context, opts ...grpc.CallOption) error {
	return c.invoke(ctx, "Refresh", &Empty{}, &Empty{}, opts)
}

func (c *Client) Snapshot(ctx context.Context, opts ...grpc.CallOption) (*board.Snapshot, error) {
	out := new(SnapshotResponse)
	if err := c.invoke(ctx, "Snapshot", &Empty{}, out, opts); err != nil {
		return nil, err
	}
	return &out.Cells, nil
}
