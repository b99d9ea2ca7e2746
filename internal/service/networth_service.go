package service

import (
	"github.com/horizon60/Horizon60-Backend/internal/format"
	"github.com/horizon60/Horizon60-Backend/internal/model"
	"github.com/horizon60/Horizon60-Backend/internal/prices"
	"github.com/horizon60/Horizon60-Backend/internal/repository"
	"github.com/horizon60/Horizon60-Backend/internal/valuation"
)

// NetWorthService computes the portfolio overview: total net worth,
// per-type breakdown, and per-account balances with profit/loss. It reads
// the quote cache but never writes it.
type NetWorthService struct {
	accountRepo *repository.AccountRepository
	cache       *prices.Cache
}

// NewNetWorthService creates a new NetWorthService
func NewNetWorthService(accountRepo *repository.AccountRepository, cache *prices.Cache) *NetWorthService {
	return &NetWorthService{accountRepo: accountRepo, cache: cache}
}

// HoldingView is one holding's valuation as displayed.
type HoldingView struct {
	ID                string            `json:"id"`
	Kind              model.HoldingKind `json:"kind"`
	Ticker            string            `json:"ticker,omitempty"`
	Quantity          float64           `json:"quantity,omitempty"`
	PurchasePrice     *float64          `json:"purchasePrice,omitempty"`
	CurrentPrice      *float64          `json:"currentPrice,omitempty"`
	CostBasis         *float64          `json:"costBasis,omitempty"`
	MarketValue       *float64          `json:"marketValue"`
	ProfitLossDollar  *float64          `json:"profitLossDollar,omitempty"`
	ProfitLossPercent *float64          `json:"profitLossPercent,omitempty"`
	MarketValueText   string            `json:"marketValueText"`
}

// AccountView is one account's aggregate valuation as displayed.
type AccountView struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Type              model.AccountType `json:"type"`
	Institution       string            `json:"institution,omitempty"`
	Balance           float64           `json:"balance"`
	TotalInvested     float64           `json:"totalInvested"`
	ProfitLossDollar  float64           `json:"profitLossDollar"`
	ProfitLossPercent *float64          `json:"profitLossPercent,omitempty"`
	BalanceText       string            `json:"balanceText"`
	BalanceCompact    string            `json:"balanceCompact"`
	Holdings          []HoldingView     `json:"holdings"`
}

// Summary is the full net-worth overview.
type Summary struct {
	TotalNetWorth        float64                       `json:"totalNetWorth"`
	TotalNetWorthText    string                        `json:"totalNetWorthText"`
	TotalNetWorthCompact string                        `json:"totalNetWorthCompact"`
	ByType               map[model.AccountType]float64 `json:"byType"`
	Accounts             []AccountView                 `json:"accounts"`
}

// GetSummary computes the current overview from stored accounts and the
// quote cache. Holdings with no resolvable price simply show missing values;
// an empty cache produces a summary built entirely from fallbacks.
func (s *NetWorthService) GetSummary() (Summary, error) {
	accounts, err := s.accountRepo.GetAccounts()
	if err != nil {
		return Summary{}, err
	}

	total := valuation.TotalNetWorth(accounts, s.cache)
	summary := Summary{
		TotalNetWorth:        round2(total),
		TotalNetWorthText:    format.Currency(&total),
		TotalNetWorthCompact: format.Compact(&total),
		ByType:               valuation.SummaryByType(accounts, s.cache),
		Accounts:             make([]AccountView, 0, len(accounts)),
	}
	for t, v := range summary.ByType {
		summary.ByType[t] = round2(v)
	}

	for _, acct := range accounts {
		summary.Accounts = append(summary.Accounts, s.accountView(acct))
	}
	return summary, nil
}

func (s *NetWorthService) accountView(acct model.Account) AccountView {
	invested, market, plDollar, plPercent := valuation.AccountProfitLoss(acct, s.cache)

	view := AccountView{
		ID:                acct.ID,
		Name:              acct.Name,
		Type:              acct.Type,
		Institution:       acct.Institution,
		Balance:           round2(market),
		TotalInvested:     round2(invested),
		ProfitLossDollar:  round2(plDollar),
		ProfitLossPercent: round2Ptr(plPercent),
		BalanceText:       format.Currency(&market),
		BalanceCompact:    format.Compact(&market),
		Holdings:          make([]HoldingView, 0, len(acct.Holdings)),
	}

	for _, h := range acct.Holdings {
		hv := HoldingView{
			ID:                h.ID,
			Kind:              h.Kind,
			CostBasis:         round2Ptr(valuation.CostBasis(h, acct.Type)),
			MarketValue:       round2Ptr(valuation.MarketValue(h, acct.Type, s.cache)),
			ProfitLossDollar:  round2Ptr(valuation.ProfitLossDollar(h, acct.Type, s.cache)),
			ProfitLossPercent: round2Ptr(valuation.ProfitLossPercent(h, acct.Type, s.cache)),
		}
		hv.MarketValueText = format.Currency(hv.MarketValue)
		if h.Kind == model.HoldingKindSecurity && h.Security != nil {
			hv.Ticker = h.Security.Ticker
			hv.Quantity = h.Security.Quantity
			hv.PurchasePrice = round2Ptr(valuation.PurchasePrice(h))
			hv.CurrentPrice = round2Ptr(valuation.CurrentPrice(h, s.cache))
		}
		view.Holdings = append(view.Holdings, hv)
	}
	return view
}
