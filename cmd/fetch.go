package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fetchCmd struct {
	csv string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch quotes for ad-hoc tickers without saving them" }
func (*fetchCmd) Usage() string {
	return `tickw fetch [-csv <path>] <tickers...>

  Fetches current price quotes for the given ticker symbols and prints them
  with summary statistics. Nothing is added to the saved watchlist.

Usage Examples:
$ tickw fetch -csv quotes.csv aapl msft
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csv, "csv", "", "Export results to CSV at the given path.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker must be provided.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	quotes, err := quoteClient().Fetch(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	return reportQuotes(quotes, c.csv)
}
