// Package marketdata fetches live quotes from the two public price sources:
// a keyed real-time endpoint for exchange-listed securities and a keyless
// endpoint for crypto assets. Either client can fall back to a public CORS
// relay when the direct request fails.
package marketdata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client fetches a single numeric quote for a symbol.
// Both the securities and crypto clients satisfy it.
type Client interface {
	FetchQuote(ctx context.Context, symbol string) (float64, error)
}

// HTTPDoer is the subset of http.Client the fetchers need. It enables
// dependency injection for testing without network calls.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Fetch errors. Use errors.Is() to check for these conditions.
var (
	// ErrNoQuote indicates the source returned no usable price for the symbol.
	ErrNoQuote = errors.New("no quote available")
	// ErrMissingCredential indicates the securities source has no API token configured.
	ErrMissingCredential = errors.New("market data credential not configured")
)

const defaultTimeout = 15 * time.Second

// get performs a GET and, when a relay base URL is set and the direct request
// fails (transport error or non-2xx), retries the same URL once through the
// relay. The relay receives the full target URL as its url query parameter.
func get(ctx context.Context, doer HTTPDoer, relayURL, target string) ([]byte, error) {
	body, directErr := getOnce(ctx, doer, target)
	if directErr == nil {
		return body, nil
	}
	if relayURL == "" {
		return nil, directErr
	}

	relayed := fmt.Sprintf("%s?url=%s", relayURL, url.QueryEscape(target))
	body, relayErr := getOnce(ctx, doer, relayed)
	if relayErr != nil {
		return nil, fmt.Errorf("direct fetch failed (%v); relay fetch failed: %w", directErr, relayErr)
	}
	return body, nil
}

func getOnce(ctx context.Context, doer HTTPDoer, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := doer.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
