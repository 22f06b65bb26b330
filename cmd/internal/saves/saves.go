package saves

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/fieldboard/cli"
	"github.com/nelhage/fieldboard/cmd/internal/opt"
	"github.com/nelhage/fieldboard/notation"
	"github.com/nelhage/fieldboard/store"
)

type Command struct {
	opt opt.Store
}

func (*Command) Name() string     { return "saves" }
func (*Command) Synopsis() string { return "List saved boards, or show one" }
func (*Command) Usage() string {
	return `saves [flags] [NAME]

With no argument, list every saved board. With a NAME, print that board.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.opt.AddFlags(flags)
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

	switch flag.NArg() {
	case 0:
		names, err := st.List(ctx)
		if err != nil {
			log.Printf("list: %v", err)
			return subcommands.ExitFailure
		}
		for _, n := range names {
			fmt.Println(n)
		}
	case 1:
		b, err := store.LoadBoard(ctx, st, flag.Arg(0))
		if err != nil {
			log.Printf("load: %v", err)
			return subcommands.ExitFailure
		}
		snap := b.Snapshot()
		cli.RenderBoard(opt.Glyphs(cfg), os.Stdout, &snap)
		fmt.Println(notation.FormatFPS(&snap))
	default:
		log.Println("at most one save name")
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
