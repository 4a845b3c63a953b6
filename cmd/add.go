package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add tickers to your watchlist" }
func (*addCmd) Usage() string {
	return `tickw add <tickers...>

  Adds ticker symbols to the saved watchlist. Symbols are uppercased and
  de-duplicated; adding an already watched symbol is harmless.

Usage Examples:
$ tickw add aapl msft
`
}

func (*addCmd) SetFlags(*flag.FlagSet) {}

func (*addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker must be provided.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	watchlist, err := LoadWatchlist()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	added := watchlist.Add(f.Args()...)
	if err := SaveWatchlist(watchlist); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %d ticker(s) to watchlist.\n", added)
	return subcommands.ExitSuccess
}
