package rpc

import (
	"context"
	"errors"
	"log"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nelhage/fieldboard/board"
)

// Server serves a single shared board.
type Server struct {
	mu    sync.Mutex
	board *board.Board
}

func NewServer(b *board.Board) *Server {
	if b == nil {
		b = board.New()
	}
	return &Server{board: b}
}

func coord(s string) (board.Coord, error) {
	c, err := board.ParseCoord(s)
	if err != nil {
		return board.NoCoord, status.Error(codes.InvalidArgument, err.Error())
	}
	return c, nil
}

func record(p *board.Piece) *board.Record {
	if p == nil {
		return nil
	}
	r := p.Record()
	return &r
}

func (s *Server) Reset(ctx context.Context, _ *Empty) (*Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.Reset()
	return &Empty{}, nil
}

func (s *Server) Place(ctx context.Context, req *PlaceRequest) (*PlaceResponse, error) {
	ps, err := board.FromRecords(req.Pieces)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.board.Place(ps...); err != nil {
		var ie *board.InitializationError
		if errors.As(err, &ie) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, err
	}
	log.Printf("placed %d pieces", len(ps))
	return &PlaceResponse{Placed: len(ps)}, nil
}

func (s *Server) Put(ctx context.Context, req *PutRequest) (*PutResponse, error) {
	kind := board.King
	if req.Type != "" {
		k, err := board.ParseKind(req.Type)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		kind = k
	}
	at, err := coord(req.At)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.board.Put(kind, at)
	if errors.Is(err, board.ErrOccupied) {
		return nil, status.Errorf(codes.FailedPrecondition, "%s: %v", at, err)
	}
	if err != nil {
		return nil, err
	}
	return &PutResponse{Piece: p.Record()}, nil
}

func (s *Server) Move(ctx context.Context, req *MoveRequest) (*MoveResponse, error) {
	from, err := coord(req.From)
	if err != nil {
		return nil, err
	}
	to, err := coord(req.To)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	captured, ok := s.board.Move(from, to)
	return &MoveResponse{Applied: ok, Captured: record(captured)}, nil
}

func (s *Server) Remove(ctx context.Context, req *RemoveRequest) (*RemoveResponse, error) {
	at, err := coord(req.At)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return &RemoveResponse{Removed: record(s.board.Remove(at))}, nil
}

func (s *Server) Refresh(ctx context.Context, _ *Empty) (*Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board.Refresh()
	return &Empty{}, nil
}

func (s *Server) Snapshot(ctx context.Context, _ *Empty) (*SnapshotResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &SnapshotResponse{Cells: s.board.Snapshot()}, nil
}

var _ BoardServer = (*Server)(nil)
