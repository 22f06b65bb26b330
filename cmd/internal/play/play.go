package play

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/fieldboard/board"
	"github.com/nelhage/fieldboard/cmd/internal/opt"
	"github.com/nelhage/fieldboard/engine"
	"github.com/nelhage/fieldboard/notation"
)

type Command struct {
	opt      opt.Store
	position string
	quiet    bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Drive a board from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Read board commands from standard input, one per line. Type "help" for
the commands available in the current menu.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.opt.AddFlags(flags)
	flags.StringVar(&c.position, "position", "", "start from this FPS position")
	flags.BoolVar(&c.quiet, "quiet", false, "do not print a prompt")
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

	sess := engine.NewSession(st, os.Stdout)
	sess.Glyphs = opt.Glyphs(cfg)
	if c.position != "" {
		ps, err := notation.ParseFPS(c.position)
		if err != nil {
			log.Printf("position: %v", err)
			return subcommands.ExitUsageError
		}
		b, err := board.FromPieces(ps)
		if err != nil {
			log.Printf("position: %v", err)
			return subcommands.ExitFailure
		}
		sess.Board = b
		sess.Segment = engine.BoardDisplay
	}

	e := engine.NewEngine(sess, os.Stdin, os.Stdout)
	if !c.quiet {
		e.Prompt = "> "
	}
	if err := e.Run(ctx); err != nil {
		log.Println("play: ", err.Error())
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
