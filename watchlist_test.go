package tickerwatch

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"aapl":   "AAPL",
		" msft ": "MSFT",
		"GOOG":   "GOOG",
		"   ":    "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestWatchlistAdd(t *testing.T) {
	w := NewWatchlist()

	added := w.Add("msft", "aapl", "AAPL", "  ")
	if added != 3 {
		t.Errorf("Add() = %d; want 3", added)
	}

	want := []string{"AAPL", "MSFT"}
	if got := w.Tickers(); !slices.Equal(got, want) {
		t.Errorf("Tickers() = %v; want %v", got, want)
	}
}

func TestWatchlistAddIsIdempotent(t *testing.T) {
	w := NewWatchlist("AAPL")
	w.Add("aapl")
	w.Add("Aapl")

	if w.Len() != 1 {
		t.Errorf("Len() = %d; want 1", w.Len())
	}
}

func TestWatchlistRemove(t *testing.T) {
	w := NewWatchlist("AAPL", "MSFT", "GOOG")

	removed := w.Remove("aapl", "TSLA")
	if removed != 1 {
		t.Errorf("Remove() = %d; want 1", removed)
	}
	if w.Has("AAPL") {
		t.Error("Has(AAPL) = true after Remove")
	}

	want := []string{"GOOG", "MSFT"}
	if got := w.Tickers(); !slices.Equal(got, want) {
		t.Errorf("Tickers() = %v; want %v", got, want)
	}
}

func TestWatchlistRemoveNoMatch(t *testing.T) {
	w := NewWatchlist("AAPL")
	if removed := w.Remove("TSLA"); removed != 0 {
		t.Errorf("Remove(TSLA) = %d; want 0", removed)
	}
}

func TestWatchlistTickersIsACopy(t *testing.T) {
	w := NewWatchlist("AAPL", "MSFT")
	tickers := w.Tickers()
	tickers[0] = "XXXX"

	if !w.Has("AAPL") {
		t.Error("mutating the returned slice changed the watchlist")
	}
}
