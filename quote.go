package tickerwatch

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Quote is a single price observation for a ticker at fetch time. Quotes are
// created fresh on every fetch and never persisted.
type Quote struct {
	Symbol string
	Price  Money
}

// Quotes maps ticker symbols to their quote for one fetch operation.
type Quotes map[string]Quote

// Symbols returns the quoted symbols in ascending order.
func (q Quotes) Symbols() []string {
	symbols := make([]string, 0, len(q))
	for symbol := range q {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// Summary aggregates the prices of one fetch operation. Min, Max and Avg carry
// a currency only when every quote agrees on one.
type Summary struct {
	Count int
	Min   Money
	Max   Money
	Avg   Money
}

// Summarize computes count, min, max and average over the quote prices. It
// reports false when there are no quotes: statistics are undefined then and
// callers print a "no data" message instead.
func Summarize(quotes Quotes) (Summary, bool) {
	if len(quotes) == 0 {
		return Summary{}, false
	}

	var min, max, sum decimal.Decimal
	cur := ""
	first := true
	for _, quote := range quotes {
		price := quote.Price.Amount()
		if first {
			min, max, cur = price, price, quote.Price.Currency()
			first = false
		} else {
			if price.LessThan(min) {
				min = price
			}
			if price.GreaterThan(max) {
				max = price
			}
			if quote.Price.Currency() != cur {
				cur = ""
			}
		}
		sum = sum.Add(price)
	}

	count := len(quotes)
	return Summary{
		Count: count,
		Min:   M(min, cur),
		Max:   M(max, cur),
		Avg:   M(sum.Div(decimal.NewFromInt(int64(count))), cur),
	}, true
}
