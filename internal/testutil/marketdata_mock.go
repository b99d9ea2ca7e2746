package testutil

import (
	"context"
	"strings"

	"github.com/horizon60/Horizon60-Backend/internal/marketdata"
)

// MockMarketClient is a mock implementation of marketdata.Client for testing.
// It serves quotes from an in-memory map instead of making API calls.
type MockMarketClient struct {
	// Quotes maps uppercased symbol to price
	Quotes map[string]float64
	// MockError, when set, is returned from every fetch
	MockError error
	// FetchCount tracks how many times FetchQuote was called
	FetchCount int
	// Fetched records the symbols requested, in order
	Fetched []string
}

// NewMockMarketClient creates a mock client serving the given quotes.
func NewMockMarketClient(quotes map[string]float64) *MockMarketClient {
	if quotes == nil {
		quotes = map[string]float64{}
	}
	return &MockMarketClient{Quotes: quotes}
}

// FetchQuote returns the configured quote for the symbol, or
// marketdata.ErrNoQuote when the symbol is unknown.
func (m *MockMarketClient) FetchQuote(_ context.Context, symbol string) (float64, error) {
	m.FetchCount++
	m.Fetched = append(m.Fetched, symbol)

	if m.MockError != nil {
		return 0, m.MockError
	}
	price, ok := m.Quotes[strings.ToUpper(symbol)]
	if !ok {
		return 0, marketdata.ErrNoQuote
	}
	return price, nil
}

// WithError configures the mock to return the specified error.
func (m *MockMarketClient) WithError(err error) *MockMarketClient {
	m.MockError = err
	return m
}

// WithQuote adds a quote to the mock.
func (m *MockMarketClient) WithQuote(symbol string, price float64) *MockMarketClient {
	m.Quotes[strings.ToUpper(symbol)] = price
	return m
}
