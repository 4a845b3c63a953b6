package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"tickerwatch/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
