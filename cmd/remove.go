package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove tickers from your watchlist" }
func (*removeCmd) Usage() string {
	return `tickw remove <tickers...>

  Removes ticker symbols from the saved watchlist, matching
  case-insensitively. Symbols not on the watchlist are ignored.

Usage Examples:
$ tickw remove aapl
`
}

func (*removeCmd) SetFlags(*flag.FlagSet) {}

func (*removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	removed := watchlist.Remove(f.Args()...)
	if err := SaveWatchlist(watchlist); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed %d ticker(s) from watchlist.\n", removed)
	return subcommands.ExitSuccess
}
