package service

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/horizon60/Horizon60-Backend/internal/marketdata"
	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/prices"
	"github.com/horizon60/Horizon60-Backend/internal/repository"
)

// PriceService owns the quote cache and the sync sequence that populates it.
//
// A sync walks each source's tickers one at a time with a fixed delay
// between requests to respect third-party rate limits. A failed ticker
// leaves its cache entry unchanged and does not abort the rest of the
// sequence. The securities and crypto sources are independent, so they run
// concurrently; each remains sequential internally.
type PriceService struct {
	accountRepo  *repository.AccountRepository
	cache        *prices.Cache
	stockClient  marketdata.Client
	cryptoClient marketdata.Client
	fetchDelay   time.Duration
}

// NewPriceService creates a new PriceService
func NewPriceService(
	accountRepo *repository.AccountRepository,
	cache *prices.Cache,
	stockClient marketdata.Client,
	cryptoClient marketdata.Client,
	fetchDelay time.Duration,
) *PriceService {
	return &PriceService{
		accountRepo:  accountRepo,
		cache:        cache,
		stockClient:  stockClient,
		cryptoClient: cryptoClient,
		fetchDelay:   fetchDelay,
	}
}

// SyncResult reports one sync run.
type SyncResult struct {
	Updated int      `json:"updated"`
	Failed  []string `json:"failed"`
}

// Cache exposes the quote cache for read-only consumers.
func (s *PriceService) Cache() *prices.Cache {
	return s.cache
}

// SyncAll refreshes quotes for every ticker held in security accounts.
// Retirement tickers go to the securities source, Crypto tickers to the
// crypto source. Tickers with a price override still sync; the override
// just wins at valuation time.
func (s *PriceService) SyncAll(ctx context.Context) (SyncResult, error) {
	accounts, err := s.accountRepo.GetAccounts()
	if err != nil {
		return SyncResult{}, err
	}

	stockTickers, cryptoTickers := collectTickers(accounts)

	var (
		g                         errgroup.Group
		stockResult, cryptoResult SyncResult
	)
	g.Go(func() error {
		stockResult = s.syncSequence(ctx, s.stockClient, stockTickers)
		return nil
	})
	g.Go(func() error {
		cryptoResult = s.syncSequence(ctx, s.cryptoClient, cryptoTickers)
		return nil
	})
	// The workers never return errors; per-ticker failures are soft.
	_ = g.Wait()

	return SyncResult{
		Updated: stockResult.Updated + cryptoResult.Updated,
		Failed:  append(stockResult.Failed, cryptoResult.Failed...),
	}, ctx.Err()
}

// syncSequence fetches each ticker in order, pausing between requests.
func (s *PriceService) syncSequence(ctx context.Context, client marketdata.Client, tickers []string) SyncResult {
	var result SyncResult
	for i, ticker := range tickers {
		if i > 0 && s.fetchDelay > 0 {
			select {
			case <-time.After(s.fetchDelay):
			case <-ctx.Done():
				result.Failed = append(result.Failed, tickers[i:]...)
				return result
			}
		}

		price, err := client.FetchQuote(ctx, ticker)
		if err != nil {
			log.Printf("price sync: %s failed: %v", ticker, err)
			result.Failed = append(result.Failed, ticker)
			continue
		}
		s.cache.Put(ticker, price, time.Now())
		result.Updated++
	}
	return result
}

// collectTickers gathers the distinct uppercased tickers per source, in
// stable order.
func collectTickers(accounts []model.Account) (stock, crypto []string) {
	stockSet := make(map[string]bool)
	cryptoSet := make(map[string]bool)
	for _, acct := range accounts {
		if !acct.Type.IsSecurity() {
			continue
		}
		for _, h := range acct.Holdings {
			if h.Kind != model.HoldingKindSecurity || h.Security == nil {
				continue
			}
			ticker := strings.ToUpper(h.Security.Ticker)
			if ticker == "" {
				continue
			}
			if acct.Type == model.AccountTypeCrypto {
				cryptoSet[ticker] = true
			} else {
				stockSet[ticker] = true
			}
		}
	}
	return sortedKeys(stockSet), sortedKeys(cryptoSet)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
