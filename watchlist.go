package tickerwatch

import (
	"slices"
	"strings"
)

// Normalize returns the canonical form of a ticker symbol: trimmed and
// uppercased. An empty result means the input was not a usable symbol.
func Normalize(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// Watchlist holds the user's set of ticker symbols. Tickers are kept
// normalized, unique and sorted at all times.
type Watchlist struct {
	tickers []string
	index   map[string]bool
}

// NewWatchlist creates a watchlist containing the given tickers.
func NewWatchlist(tickers ...string) *Watchlist {
	w := &Watchlist{index: make(map[string]bool)}
	w.Add(tickers...)
	return w
}

// Add inserts tickers into the watchlist, normalizing them first, and
// returns the number of usable symbols in the arguments. Symbols already
// present still count: the caller reports how many were submitted, the
// set semantics take care of duplicates.
func (w *Watchlist) Add(tickers ...string) int {
	added := 0
	for _, t := range tickers {
		ticker := Normalize(t)
		if ticker == "" {
			continue
		}
		added++
		if w.index[ticker] {
			continue
		}
		w.index[ticker] = true
		i, _ := slices.BinarySearch(w.tickers, ticker)
		w.tickers = slices.Insert(w.tickers, i, ticker)
	}
	return added
}

// Remove deletes tickers from the watchlist, matching case-insensitively,
// and returns the number actually removed.
func (w *Watchlist) Remove(tickers ...string) int {
	before := len(w.tickers)
	for _, t := range tickers {
		ticker := Normalize(t)
		if !w.index[ticker] {
			continue
		}
		delete(w.index, ticker)
		if i, found := slices.BinarySearch(w.tickers, ticker); found {
			w.tickers = slices.Delete(w.tickers, i, i+1)
		}
	}
	return before - len(w.tickers)
}

// Has reports whether the watchlist contains the ticker.
func (w *Watchlist) Has(ticker string) bool { return w.index[Normalize(ticker)] }

// Len returns the number of tickers in the watchlist.
func (w *Watchlist) Len() int { return len(w.tickers) }

// Tickers returns the tickers in ascending order. The returned slice is a
// copy, never nil.
func (w *Watchlist) Tickers() []string {
	tickers := make([]string, len(w.tickers))
	copy(tickers, w.tickers)
	return tickers
}
