package serve

import (
	"context"
	"flag"
	"log"
	"net"

	"google.golang.org/grpc"

	"github.com/google/subcommands"
	"github.com/nelhage/fieldboard/board"
	"github.com/nelhage/fieldboard/cmd/internal/opt"
	"github.com/nelhage/fieldboard/notation"
	"github.com/nelhage/fieldboard/rpc"
)

type Command struct {
	opt      opt.Store
	listen   string
	position string
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve a board via GRPC" }
func (*Command) Usage() string {
	return `serve
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	c.opt.AddFlags(flags)
	flags.StringVar(&c.listen, "listen", "", "bind address (default from config)")
	flags.StringVar(&c.position, "position", "", "initial FPS position")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.opt.Build()
	if err != nil {
		log.Printf("config: %v", err)
		return subcommands.ExitUsageError
	}
	addr := cfg.Listen
	if c.listen != "" {
		addr = c.listen
	}

	b := board.New()
	if c.position != "" {
		ps, err := notation.ParseFPS(c.position)
		if err != nil {
			log.Fatalf("position: %v", err)
		}
		if b, err = board.FromPieces(ps); err != nil {
			log.Fatalf("position: %v", err)
		}
	}

	log.Printf("Listening on %s", addr)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	grpcServer := grpc.NewServer()
	rpc.Register(grpcServer, rpc.NewServer(b))

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	if err := grpcServer.Serve(lis); err != nil {
		log.Printf("serve: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
