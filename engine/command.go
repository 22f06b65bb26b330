package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrQuit           = errors.New("quit")
	// ErrRejected is returned for a well-formed request the board
	// refused, such as an illegal move.
	ErrRejected = errors.New("rejected")
	ErrNoStore  = errors.New("no save store configured")
	ErrUsage    = errors.New("bad arguments")
)

type NotPermittedError struct {
	Command string
	Segment Segment
}

func (e *NotPermittedError) Error() string {
	return fmt.Sprintf("%s is not available in the %s", e.Command, e.Segment)
}

type Handler func(ctx context.Context, s *Session, args []string) error

type Command struct {
	Name    string
	Usage   string
	Allowed segments
	Run     Handler
}

type Table struct {
	commands map[string]*Command
}

func (t *Table) add(c *Command) {
	if _, dup := t.commands[c.Name]; dup {
		panic(fmt.Sprintf("duplicate command: %s", c.Name))
	}
	t.commands[c.Name] = c
}

func (t *Table) Lookup(name string) (*Command, bool) {
	c, ok := t.commands[name]
	return c, ok
}

// Available lists, by name, the commands permitted in seg.
func (t *Table) Available(seg Segment) []*Command {
	var out []*Command
	for _, c := range t.commands {
		if c.Allowed.permits(seg) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Dispatch runs one input line against s.
func (t *Table) Dispatch(ctx context.Context, s *Session, line string) error {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}
	c, ok := t.Lookup(strings.ToLower(words[0]))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, words[0])
	}
	if !c.Allowed.permits(s.Segment) {
		return &NotPermittedError{Command: c.Name, Segment: s.Segment}
	}
	return c.Run(ctx, s, words[1:])
}

func usage(c string) error {
	return fmt.Errorf("%w: usage: %s", ErrUsage, c)
}
