package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DefaultCryptoBaseURL is the keyless simple-price endpoint for crypto assets.
const DefaultCryptoBaseURL = "https://api.coingecko.com/api/v3/simple/price"

// cryptoAssetIDs maps common ticker symbols to the provider's asset
// identifiers. Symbols not listed fall back to their lowercased form, which
// matches the provider's ID for many smaller assets.
var cryptoAssetIDs = map[string]string{
	"BTC":   "bitcoin",
	"ETH":   "ethereum",
	"SOL":   "solana",
	"ADA":   "cardano",
	"DOGE":  "dogecoin",
	"XRP":   "ripple",
	"DOT":   "polkadot",
	"LTC":   "litecoin",
	"AVAX":  "avalanche-2",
	"LINK":  "chainlink",
	"MATIC": "matic-network",
	"BNB":   "binancecoin",
	"BCH":   "bitcoin-cash",
	"UNI":   "uniswap",
	"XLM":   "stellar",
	"ATOM":  "cosmos",
	"XMR":   "monero",
}

// CryptoClient fetches USD quotes for crypto assets. The endpoint is keyless.
type CryptoClient struct {
	doer     HTTPDoer
	baseURL  string
	relayURL string
}

// NewCryptoClient creates a crypto quote client. relayURL may be empty to
// disable the CORS-relay fallback. doer may be nil to use a default client.
func NewCryptoClient(doer HTTPDoer, baseURL, relayURL string) *CryptoClient {
	if doer == nil {
		doer = &http.Client{Timeout: defaultTimeout}
	}
	if baseURL == "" {
		baseURL = DefaultCryptoBaseURL
	}
	return &CryptoClient{doer: doer, baseURL: baseURL, relayURL: relayURL}
}

// AssetID resolves a ticker symbol to the provider's asset identifier.
func AssetID(symbol string) string {
	if id, ok := cryptoAssetIDs[strings.ToUpper(symbol)]; ok {
		return id
	}
	return strings.ToLower(symbol)
}

// FetchQuote returns the current USD price for the crypto symbol.
func (c *CryptoClient) FetchQuote(ctx context.Context, symbol string) (float64, error) {
	assetID := AssetID(symbol)
	target := fmt.Sprintf("%s?ids=%s&vs_currencies=usd", c.baseURL, url.QueryEscape(assetID))

	body, err := get(ctx, c.doer, c.relayURL, target)
	if err != nil {
		return 0, fmt.Errorf("fetch crypto quote for %s: %w", symbol, err)
	}

	// Response shape: {"bitcoin": {"usd": 64000.12}}
	var decoded map[string]map[string]float64
	if err := json.Unmarshal(body, &decoded); err != nil {
		return 0, fmt.Errorf("decode crypto quote for %s: %w", symbol, err)
	}

	quote, ok := decoded[assetID]
	if !ok {
		return 0, ErrNoQuote
	}
	price, ok := quote["usd"]
	if !ok || price <= 0 {
		return 0, ErrNoQuote
	}
	return price, nil
}
