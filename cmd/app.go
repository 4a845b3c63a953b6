// Package cmd implements the CLI application to manage a stock watchlist.
package cmd

import (
	"flag"

	"github.com/google/subcommands"

	"tickerwatch"
	"tickerwatch/yahoo"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "watchlist")
	c.Register(&removeCmd{}, "watchlist")
	c.Register(&listCmd{}, "watchlist")

	c.Register(&refreshCmd{}, "quotes")
	c.Register(&fetchCmd{}, "quotes")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var watchlistFile = flag.String("watchlist-file", tickerwatch.DefaultPath(), "Path to the watchlist file (JSON array of tickers)")
var quoteURL = flag.String("quote-url", yahoo.DefaultURL, "Base URL of the quote service")

// LoadWatchlist is the central function to read the app watchlist file.
func LoadWatchlist() (*tickerwatch.Watchlist, error) {
	return tickerwatch.LoadWatchlist(*watchlistFile)
}

// SaveWatchlist rewrites the app watchlist file wholesale.
func SaveWatchlist(w *tickerwatch.Watchlist) error {
	return tickerwatch.SaveWatchlist(*watchlistFile, w)
}

// quoteClient returns a client for the configured quote service.
func quoteClient() *yahoo.Client {
	return yahoo.New(*quoteURL)
}
