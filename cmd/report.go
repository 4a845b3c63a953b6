package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"tickerwatch"
	"tickerwatch/renderer"
)

// reportQuotes prints the quote table and summary, then optionally exports the
// quotes to CSV. An empty quote set is informational, not an error: the quote
// service silently omits symbols it cannot resolve.
func reportQuotes(quotes tickerwatch.Quotes, csvPath string) subcommands.ExitStatus {
	if len(quotes) > 0 {
		printMarkdown(renderer.QuotesMarkdown(quotes))
	}

	if summary, ok := tickerwatch.Summarize(quotes); ok {
		printMarkdown(renderer.SummaryMarkdown(summary))
	} else {
		fmt.Println("No quotes available.")
	}

	if csvPath != "" {
		return exportCSV(quotes, csvPath)
	}
	return subcommands.ExitSuccess
}

// exportCSV writes the quotes to a CSV file at path. With no quotes it prints
// a message and leaves the target file untouched.
func exportCSV(quotes tickerwatch.Quotes, path string) subcommands.ExitStatus {
	if len(quotes) == 0 {
		fmt.Println("No quotes to export.")
		return subcommands.ExitSuccess
	}

	file, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating CSV file %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := tickerwatch.ExportCSV(file, quotes, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV file %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("CSV exported to %s\n", path)
	return subcommands.ExitSuccess
}
