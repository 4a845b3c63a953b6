package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type refreshCmd struct {
	csv string
}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "fetch current quotes for your saved watchlist" }
func (*refreshCmd) Usage() string {
	return `tickw refresh [-csv <path>]

  Fetches current price quotes for every ticker on the saved watchlist and
  prints them with summary statistics. The watchlist itself is not modified.
`
}

func (c *refreshCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csv, "csv", "", "Export results to CSV at the given path.")
}

func (c *refreshCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	watchlist, err := LoadWatchlist()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if watchlist.Len() == 0 {
		fmt.Println("Watchlist is empty. Add tickers with the 'add' command.")
		return subcommands.ExitSuccess
	}

	quotes, err := quoteClient().Fetch(watchlist.Tickers())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	return reportQuotes(quotes, c.csv)
}
