// Package renderer converts quote data into markdown reports.
package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"tickerwatch"
)

// QuotesMarkdown renders the quote table, one row per quote sorted by symbol
// ascending.
func QuotesMarkdown(quotes tickerwatch.Quotes) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Quotes")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Symbol", "Price", "Currency"},
	}
	for _, symbol := range quotes.Symbols() {
		quote := quotes[symbol]
		table.Rows = append(table.Rows, []string{
			quote.Symbol,
			quote.Price.StringFixed(),
			quote.Price.Currency(),
		})
	}
	doc.Table(table)

	return doc.String()
}
