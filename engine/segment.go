package engine

import "fmt"

// A Segment is the part of the interface that currently receives
// input. Each command is only available in some segments.
type Segment int

const (
	MainMenu Segment = iota
	BoardDisplay
	FileLoader
)

func (s Segment) String() string {
	switch s {
	case MainMenu:
		return "main menu"
	case BoardDisplay:
		return "board"
	case FileLoader:
		return "file loader"
	}
	return fmt.Sprintf("segment(%d)", int(s))
}

type segments []Segment

// permits reports whether s is in the set. The empty set permits
// every segment.
func (ss segments) permits(s Segment) bool {
	if len(ss) == 0 {
		return true
	}
	for _, o := range ss {
		if o == s {
			return true
		}
	}
	return false
}
