package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nelhage/fieldboard/board"
	"github.com/nelhage/fieldboard/cli"
	"github.com/nelhage/fieldboard/notation"
	"github.com/nelhage/fieldboard/store"
)

// NewTable returns the command table. Commands with no allowed
// segments are available everywhere.
func NewTable() *Table {
	t := &Table{commands: make(map[string]*Command)}

	t.add(&Command{Name: "help", Usage: "help", Run: help(t)})
	t.add(&Command{Name: "quit", Usage: "quit", Run: quit})
	t.add(&Command{Name: "menu", Usage: "menu", Run: menu})

	t.add(&Command{
		Name: "new", Usage: "new",
		Allowed: segments{MainMenu, BoardDisplay},
		Run:     newBoard,
	})
	t.add(&Command{
		Name: "position", Usage: "position FPS",
		Allowed: segments{MainMenu, BoardDisplay},
		Run:     position,
	})
	t.add(&Command{
		Name: "files", Usage: "files",
		Allowed: segments{MainMenu, FileLoader},
		Run:     files,
	})
	t.add(&Command{
		Name: "load", Usage: "load NAME|N",
		Allowed: segments{FileLoader},
		Run:     load,
	})

	onBoard := segments{BoardDisplay}
	t.add(&Command{Name: "save", Usage: "save", Allowed: onBoard, Run: save})
	t.add(&Command{Name: "put", Usage: "put SQUARE", Allowed: onBoard, Run: put})
	t.add(&Command{Name: "take", Usage: "take SQUARE", Allowed: onBoard, Run: take})
	t.add(&Command{Name: "move", Usage: "move FROM TO", Allowed: onBoard, Run: move})
	t.add(&Command{Name: "refresh", Usage: "refresh", Allowed: onBoard, Run: refresh})
	t.add(&Command{Name: "show", Usage: "show [activity]", Allowed: onBoard, Run: show})
	t.add(&Command{Name: "fps", Usage: "fps", Allowed: onBoard, Run: fps})
	t.add(&Command{Name: "pieces", Usage: "pieces", Allowed: onBoard, Run: pieces})
	t.add(&Command{Name: "history", Usage: "history", Allowed: onBoard, Run: history})

	return t
}

func help(t *Table) Handler {
	return func(_ context.Context, s *Session, _ []string) error {
		fmt.Fprintf(s.Out, "[%s]\n", s.Segment)
		for _, c := range t.Available(s.Segment) {
			fmt.Fprintf(s.Out, "  %s\n", c.Usage)
		}
		return nil
	}
}

func quit(context.Context, *Session, []string) error {
	return ErrQuit
}

func menu(_ context.Context, s *Session, _ []string) error {
	s.Segment = MainMenu
	return nil
}

func newBoard(_ context.Context, s *Session, args []string) error {
	if len(args) != 0 {
		return usage("new")
	}
	s.setBoard(board.New())
	return nil
}

func position(_ context.Context, s *Session, args []string) error {
	if len(args) != 1 {
		return usage("position FPS")
	}
	ps, err := notation.ParseFPS(args[0])
	if err != nil {
		return err
	}
	b, err := board.FromPieces(ps)
	if err != nil {
		return err
	}
	s.setBoard(b)
	return nil
}

func files(ctx context.Context, s *Session, _ []string) error {
	if s.Store == nil {
		return ErrNoStore
	}
	names, err := s.Store.List(ctx)
	if err != nil {
		return err
	}
	s.listing = names
	for i, n := range names {
		fmt.Fprintf(s.Out, "%d. %s\n", i+1, n)
	}
	if len(names) == 0 {
		fmt.Fprintln(s.Out, "no saved boards")
	}
	s.Segment = FileLoader
	return nil
}

func load(ctx context.Context, s *Session, args []string) error {
	if s.Store == nil {
		return ErrNoStore
	}
	if len(args) != 1 {
		return usage("load NAME|N")
	}
	nm := args[0]
	if i, err := strconv.Atoi(nm); err == nil {
		if i < 1 || i > len(s.listing) {
			return fmt.Errorf("no file %d", i)
		}
		nm = s.listing[i-1]
	}
	b, err := store.LoadBoard(ctx, s.Store, nm)
	if err != nil {
		return err
	}
	s.setBoard(b)
	return nil
}

func save(ctx context.Context, s *Session, _ []string) error {
	if s.Store == nil {
		return ErrNoStore
	}
	nm, err := store.SaveBoard(ctx, s.Store, s.Board)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "saved %s\n", nm)
	return nil
}

func square(args []string, use string) (board.Coord, error) {
	if len(args) != 1 {
		return board.NoCoord, usage(use)
	}
	return board.ParseCoord(args[0])
}

func put(_ context.Context, s *Session, args []string) error {
	c, err := square(args, "put SQUARE")
	if err != nil {
		return err
	}
	_, err = s.Board.Put(board.King, c)
	return err
}

func take(_ context.Context, s *Session, args []string) error {
	c, err := square(args, "take SQUARE")
	if err != nil {
		return err
	}
	if s.Board.Remove(c) == nil {
		return fmt.Errorf("%s is empty", c)
	}
	return nil
}

func move(_ context.Context, s *Session, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return usage("move FROM TO")
	}
	m, err := notation.ParseMove(strings.Join(args, " "))
	if err != nil {
		return err
	}
	captured, ok := s.Board.Apply(m)
	if !ok {
		return ErrRejected
	}
	s.moves = append(s.moves, m)
	if captured != nil {
		fmt.Fprintf(s.Out, "captured %s from %s\n", captured.Kind(), m.To)
	}
	return nil
}

func refresh(_ context.Context, s *Session, _ []string) error {
	s.Board.Refresh()
	return nil
}

func show(_ context.Context, s *Session, args []string) error {
	snap := s.Board.Snapshot()
	switch {
	case len(args) == 0:
		cli.RenderBoard(s.Glyphs, s.Out, &snap)
	case len(args) == 1 && args[0] == "activity":
		cli.RenderActivity(s.Out, &snap)
	default:
		return usage("show [activity]")
	}
	return nil
}

func fps(_ context.Context, s *Session, _ []string) error {
	snap := s.Board.Snapshot()
	fmt.Fprintln(s.Out, notation.FormatFPS(&snap))
	return nil
}

func pieces(_ context.Context, s *Session, _ []string) error {
	cli.RenderPieces(s.Out, s.Board.Pieces())
	return nil
}

func history(_ context.Context, s *Session, _ []string) error {
	fmt.Fprintln(s.Out, notation.FormatMoves(s.moves))
	return nil
}
