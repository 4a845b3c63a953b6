package tickerwatch

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// this file contains functions to handle the export format.
// It should remain a plain single file, easy to open in a spreadsheet.

// csvTimeLayout is the export timestamp format: UTC, second precision,
// ISO-8601 with a trailing "Z".
const csvTimeLayout = "2006-01-02T15:04:05Z"

// ExportCSV exports the quotes to 'w' in CSV format.
//
// The first row is the header "symbol,price,currency,timestamp". Each quote
// then gets one row, in the collection's natural iteration order. The
// timestamp column is 'now' and is identical on every row of one export.
func ExportCSV(w io.Writer, quotes Quotes, now time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"symbol", "price", "currency", "timestamp"}); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	timestamp := now.UTC().Format(csvTimeLayout)
	for _, quote := range quotes {
		record := []string{quote.Symbol, quote.Price.StringFixed(), quote.Price.Currency(), timestamp}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record for %q: %w", quote.Symbol, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
