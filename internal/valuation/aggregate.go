package valuation

import (
	"github.com/horizon60/Horizon60-Backend/internal/model"
)

// AccountBalance sums the market values of an account's holdings. Holdings
// with no resolvable valuation are excluded from the sum rather than treated
// as zero or as an error.
func AccountBalance(acct model.Account, source PriceSource) float64 {
	var total float64
	for _, h := range acct.Holdings {
		if mv := MarketValue(h, acct.Type, source); mv != nil {
			total += *mv
		}
	}
	return total
}

// TotalNetWorth sums account balances across the portfolio, subtracting the
// balance of Debt-typed accounts instead of adding it.
func TotalNetWorth(accounts []model.Account, source PriceSource) float64 {
	var total float64
	for _, acct := range accounts {
		bal := AccountBalance(acct, source)
		if acct.Type.IsDebt() {
			total -= bal
		} else {
			total += bal
		}
	}
	return total
}

// SummaryByType totals account balances per account type. All four types are
// always present in the result. Debt is reported as a positive magnitude
// (amount owed), not pre-negated.
func SummaryByType(accounts []model.Account, source PriceSource) map[model.AccountType]float64 {
	summary := make(map[model.AccountType]float64, len(model.AccountTypes))
	for _, t := range model.AccountTypes {
		summary[t] = 0
	}
	for _, acct := range accounts {
		summary[acct.Type] += AccountBalance(acct, source)
	}
	return summary
}

// AccountProfitLoss returns an account's total invested amount, total market
// value, and profit/loss in dollars and percent.
//
// For balance-mode accounts the invested amount is defined as the market
// value itself, so their displayed profit/loss is always zero. Security
// holdings without a resolvable cost basis contribute market value only.
func AccountProfitLoss(acct model.Account, source PriceSource) (invested, market float64, plDollar float64, plPercent *float64) {
	market = AccountBalance(acct, source)
	if !acct.Type.IsSecurity() {
		invested = market
		if invested != 0 {
			zero := 0.0
			plPercent = &zero
		}
		return invested, market, 0, plPercent
	}
	for _, h := range acct.Holdings {
		if cb := CostBasis(h, acct.Type); cb != nil {
			invested += *cb
		}
	}
	plDollar = market - invested
	if invested != 0 {
		pct := (plDollar / invested) * 100
		plPercent = &pct
	}
	return invested, market, plDollar, plPercent
}
