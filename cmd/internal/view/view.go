package view

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"

	"github.com/nelhage/fieldboard/board"
	"github.com/nelhage/fieldboard/cmd/internal/opt"
	"github.com/nelhage/fieldboard/store"
	"github.com/nelhage/fieldboard/tui"
)

type Command struct {
	opt  opt.Store
	load string
}

func (*Command) Name() string     { return "view" }
func (*Command) Synopsis() string { return "Open a board in a full-screen terminal view" }
func (*Command) Usage() string {
	return `view [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.opt.AddFlags(flags)
	flags.StringVar(&c.load, "load", "", "open this saved board")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.opt.Build()
	if err != nil {
		log.Printf("config: %v", err)
		return subcommands.ExitUsageError
	}
	st, closer, err := opt.Open(cfg)
	if err != nil {
		log.Printf("store: %v", err)
		return subcommands.ExitFailure
	}
	defer closer()

	b := board.New()
	if c.load != "" {
		b, err = store.LoadBoard(ctx, st, c.load)
		if err != nil {
			log.Printf("load: %v", err)
			return subcommands.ExitFailure
		}
	}
	if err := tui.New(b, st, opt.Glyphs(cfg)).Run(ctx); err != nil {
		log.Printf("view: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
