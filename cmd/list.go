package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list your saved watchlist" }
func (*listCmd) Usage() string {
	return `tickw list

  Prints the saved watchlist, sorted alphabetically.
`
}

func (*listCmd) SetFlags(*flag.FlagSet) {}

func (*listCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	watchlist, err := LoadWatchlist()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if watchlist.Len() == 0 {
		fmt.Println("Watchlist is empty. Add tickers with the 'add' command.")
		return subcommands.ExitSuccess
	}

	fmt.Println("Watchlist:")
	for _, ticker := range watchlist.Tickers() {
		fmt.Printf("- %s\n", ticker)
	}
	return subcommands.ExitSuccess
}
