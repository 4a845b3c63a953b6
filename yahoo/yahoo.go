// Package yahoo implements a client for the Yahoo Finance v7 quote API.
package yahoo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tickerwatch"
)

// DefaultURL is the quote service endpoint used when none is configured.
const DefaultURL = "https://query1.finance.yahoo.com/v7/finance/quote"

const userAgent = "CLItool/1.0"

// requestTimeout bounds the single quote request. There is no retry: on
// timeout the fetch fails.
const requestTimeout = 15 * time.Second

// Client fetches current price quotes from the quote service. One Fetch call
// performs at most one batched HTTP GET.
type Client struct {
	addr string
	http *http.Client
}

// New returns a client for the quote service at addr. An empty addr selects
// [DefaultURL].
func New(addr string) *Client {
	if addr == "" {
		addr = DefaultURL
	}
	return &Client{
		addr: addr,
		http: &http.Client{Timeout: requestTimeout},
	}
}

// Fetch retrieves quotes for the given tickers in a single batched request.
//
// An empty ticker list returns an empty map without touching the network.
// Response entries missing a symbol or a price are skipped: the service
// reports unresolved symbols that way, and partial results are preferred
// over no results. Tickers absent from the response are simply absent from
// the returned map.
func (c *Client) Fetch(tickers []string) (tickerwatch.Quotes, error) {
	quotes := make(tickerwatch.Quotes, len(tickers))

	symbols := make([]string, 0, len(tickers))
	for _, t := range tickers {
		if ticker := tickerwatch.Normalize(t); ticker != "" {
			symbols = append(symbols, ticker)
		}
	}
	if len(symbols) == 0 {
		return quotes, nil
	}

	// jquote is the quote object as the service returns it. A missing price
	// stays nil rather than becoming a zero value.
	type jquote struct {
		Symbol   string           `json:"symbol"`
		Price    *decimal.Decimal `json:"regularMarketPrice"`
		Currency string           `json:"currency"`
	}
	// that's the payload
	var payload struct {
		QuoteResponse struct {
			Result []jquote `json:"result"`
		} `json:"quoteResponse"`
	}

	addr := c.addr + "?symbols=" + url.QueryEscape(strings.Join(symbols, ","))
	if err := c.jwget(addr, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	for _, entry := range payload.QuoteResponse.Result {
		if entry.Symbol == "" || entry.Price == nil {
			continue
		}
		symbol := tickerwatch.Normalize(entry.Symbol)
		quotes[symbol] = tickerwatch.Quote{
			Symbol: symbol,
			Price:  tickerwatch.M(*entry.Price, entry.Currency),
		}
	}
	return quotes, nil
}

// jwget performs an HTTP GET request to the given address and unmarshals the
// JSON response body into the provided data structure.
func (c *Client) jwget(addr string, data interface{}) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
