package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"

	"github.com/crazycoder/cruiseledger/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}

	// Handles shell completion requests and exits; a no-op otherwise.
	(&complete.Command{Sub: sub}).Complete("clt")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
