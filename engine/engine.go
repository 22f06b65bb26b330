package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
)

// Engine reads commands line by line and answers each with "ok",
// "rejected" or "error: ...".
type Engine struct {
	Session *Session
	Table   *Table
	Prompt  string

	in  *bufio.Reader
	out io.Writer
}

func NewEngine(s *Session, in io.Reader, out io.Writer) *Engine {
	return &Engine{
		Session: s,
		Table:   NewTable(),
		in:      bufio.NewReader(in),
		out:     out,
	}
}

func (e *Engine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.Prompt != "" {
			fmt.Fprintf(e.out, "%s%s", e.Session.Segment, e.Prompt)
		}
		line, err := e.in.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		err = e.Table.Dispatch(ctx, e.Session, line)
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case errors.Is(err, ErrRejected):
			fmt.Fprintln(e.out, "rejected")
		case err != nil:
			log.Printf("%q: %v", line, err)
			fmt.Fprintf(e.out, "error: %v\n", err)
		default:
			fmt.Fprintln(e.out, "ok")
		}
	}
}
