package yahoo_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"tickerwatch/yahoo"
)

func TestFetchEmptyTickersMakesNoRequest(t *testing.T) {
	t.Parallel()

	// Arrange: a server that fails the test when it sees any request.
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := yahoo.New(server.URL)

	// Act
	quotes, err := client.Fetch(nil)

	// Assert: empty map, no network call.
	require.NoError(t, err)
	require.Empty(t, quotes)
	require.Zero(t, calls, "Fetch of no tickers must not touch the network")
}

func TestFetchDropsEntriesWithoutPrice(t *testing.T) {
	t.Parallel()

	// Arrange: one resolvable symbol, one entry with no price at all.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "AAPL,BAD", r.URL.Query().Get("symbols"))
		require.Equal(t, "CLItool/1.0", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"AAPL","regularMarketPrice":150.0,"currency":"USD"},{"symbol":"BAD"}]}}`))
	}))
	defer server.Close()

	client := yahoo.New(server.URL)

	// Act
	quotes, err := client.Fetch([]string{"AAPL", "BAD"})

	// Assert: the price-less entry is dropped silently, not reported.
	require.NoError(t, err)
	require.Len(t, quotes, 1)

	quote, ok := quotes["AAPL"]
	require.True(t, ok, "AAPL missing from quotes")
	require.Equal(t, "AAPL", quote.Symbol)
	require.True(t, quote.Price.Amount().Equal(decimal.NewFromInt(150)),
		"price = %s; want 150", quote.Price.Amount())
	require.Equal(t, "USD", quote.Price.Currency())
}

func TestFetchNormalizesInput(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "AAPL", r.URL.Query().Get("symbols"))
		w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"aapl","regularMarketPrice":150.0,"currency":"USD"}]}}`))
	}))
	defer server.Close()

	client := yahoo.New(server.URL)

	// Act: lowercase in, uppercase out, both on the wire and in the keys.
	quotes, err := client.Fetch([]string{" aapl "})

	require.NoError(t, err)
	require.Contains(t, quotes, "AAPL")
}

func TestFetchNonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := yahoo.New(server.URL)

	_, err := client.Fetch([]string{"AAPL"})

	require.Error(t, err)
	require.ErrorContains(t, err, "failed to fetch quotes")
}

func TestFetchTransportError(t *testing.T) {
	t.Parallel()

	// Arrange: a server that is already gone.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	client := yahoo.New(addr)

	_, err := client.Fetch([]string{"AAPL"})

	require.Error(t, err)
	require.ErrorContains(t, err, "failed to fetch quotes")
}

func TestFetchMalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	client := yahoo.New(server.URL)

	_, err := client.Fetch([]string{"AAPL"})

	require.Error(t, err)
	require.ErrorContains(t, err, "failed to fetch quotes")
}

func TestFetchMissingTickerAbsentFromResult(t *testing.T) {
	t.Parallel()

	// Arrange: the service knows nothing about UNKNOWN and omits it entirely.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"MSFT","regularMarketPrice":250.5,"currency":"USD"}]}}`))
	}))
	defer server.Close()

	client := yahoo.New(server.URL)

	quotes, err := client.Fetch([]string{"MSFT", "UNKNOWN"})

	require.NoError(t, err)
	require.Len(t, quotes, 1)
	require.NotContains(t, quotes, "UNKNOWN")
}
