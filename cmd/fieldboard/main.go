package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/nelhage/fieldboard/cmd/internal/check"
	"github.com/nelhage/fieldboard/cmd/internal/play"
	"github.com/nelhage/fieldboard/cmd/internal/saves"
	"github.com/nelhage/fieldboard/cmd/internal/serve"
	"github.com/nelhage/fieldboard/cmd/internal/view"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&view.Command{}, "")
	subcommands.Register(&serve.Command{}, "")
	subcommands.Register(&saves.Command{}, "saves")
	subcommands.Register(&check.Command{}, "saves")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
