package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultStockBaseURL is the real-time quote endpoint for listed securities.
const DefaultStockBaseURL = "https://eodhd.com/api/real-time"

// TokenSource supplies the user's API token at request time, so a token
// saved or replaced while the server is running takes effect immediately.
type TokenSource func() (string, error)

// StockClient fetches real-time quotes for exchange-listed securities.
// The endpoint requires a user-supplied API token.
type StockClient struct {
	doer     HTTPDoer
	baseURL  string
	relayURL string
	token    TokenSource
}

// NewStockClient creates a securities quote client. relayURL may be empty to
// disable the CORS-relay fallback. doer may be nil to use a default client.
func NewStockClient(doer HTTPDoer, baseURL, relayURL string, token TokenSource) *StockClient {
	if doer == nil {
		doer = &http.Client{Timeout: defaultTimeout}
	}
	if baseURL == "" {
		baseURL = DefaultStockBaseURL
	}
	return &StockClient{doer: doer, baseURL: baseURL, relayURL: relayURL, token: token}
}

// stockQuote is the real-time endpoint's response shape. Close arrives as a
// number normally but as the string "NA" outside trading data coverage, so
// it is decoded leniently.
type stockQuote struct {
	Close         json.RawMessage `json:"close"`
	PreviousClose json.RawMessage `json:"previousClose"`
}

// FetchQuote returns the latest price for the symbol, preferring the current
// close and falling back to the previous close.
func (c *StockClient) FetchQuote(ctx context.Context, symbol string) (float64, error) {
	tok, err := c.token()
	if err != nil || tok == "" {
		return 0, ErrMissingCredential
	}

	target := fmt.Sprintf("%s/%s?api_token=%s&fmt=json", c.baseURL, url.PathEscape(symbol), url.QueryEscape(tok))
	body, err := get(ctx, c.doer, c.relayURL, target)
	if err != nil {
		return 0, fmt.Errorf("fetch quote for %s: %w", symbol, err)
	}

	var quote stockQuote
	if err := json.Unmarshal(body, &quote); err != nil {
		return 0, fmt.Errorf("decode quote for %s: %w", symbol, err)
	}

	if price, ok := numericField(quote.Close); ok && price > 0 {
		return price, nil
	}
	if price, ok := numericField(quote.PreviousClose); ok && price > 0 {
		return price, nil
	}
	return 0, ErrNoQuote
}

// numericField reads a JSON field that may be a number, a numeric string, or
// the literal "NA".
func numericField(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
