package rpc

import "github.com/nelhage/fieldboard/board"

type Empty struct{}

type PlaceRequest struct {
	Pieces []board.Record `json:"pieces"`
}

type PlaceResponse struct {
	Placed int `json:"placed"`
}

type PutRequest struct {
	Type string `json:"type"`
	At   string `json:"at"`
}

type PutResponse struct {
	Piece board.Record `json:"piece"`
}

type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type MoveResponse struct {
	Applied  bool          `json:"applied"`
	Captured *board.Record `json:"captured,omitempty"`
}

type RemoveRequest struct {
	At string `json:"at"`
}

type RemoveResponse struct {
	Removed *board.Record `json:"removed,omitempty"`
}

type SnapshotResponse struct {
	Cells board.Snapshot `json:"cells"`
}
