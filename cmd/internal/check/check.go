package check

import (
	"context"
	"flag"
	"log"
	"runtime"

	"github.com/google/subcommands"

	"github.com/nelhage/fieldboard/cmd/internal/opt"
	"github.com/nelhage/fieldboard/store"
)

type Command struct {
	opt     opt.Store
	threads int
}

func (*Command) Name() string     { return "check" }
func (*Command) Synopsis() string { return "Verify that every saved board loads" }
func (*Command) Usage() string {
	return `check [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.opt.AddFlags(flags)
	flags.IntVar(&c.threads, "threads", runtime.NumCPU(), "Number of threads")
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

	results, err := store.Verify(ctx, st, c.threads)
	if err != nil {
		log.Printf("verify: %v", err)
		return subcommands.ExitFailure
	}
	bad := 0
	for _, r := range results {
		if r.Err != nil {
			bad++
			log.Printf("bad save name=%s err=%v", r.Name, r.Err)
			continue
		}
		log.Printf("ok name=%s pieces=%d", r.Name, r.Pieces)
	}
	log.Printf("checked %d saves, %d bad", len(results), bad)
	if bad > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
