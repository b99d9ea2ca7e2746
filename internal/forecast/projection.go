// Package forecast implements the projection engine: compound growth with
// ordinary-annuity contributions, loan amortization, and the derived
// per-account and portfolio projections built from them.
//
// All functions are pure and recomputed on demand; results are never cached
// because their inputs (settings, live prices via current balances) can
// change between calls.
package forecast

import (
	"math"
	"time"
)

// MonthsForever is the sentinel returned by MonthsUntil when no stop date is
// set: contributions never stop within any projection horizon.
const MonthsForever = math.MaxInt32

// daysPerMonth approximates a calendar month for date-distance calculations.
const daysPerMonth = 30.44

// MonthlyRate converts a nominal annual percentage to the equivalent monthly
// compounding rate, (1+r)^(1/12)-1. This is deliberately not annual/12; the
// compounding-consistent conversion is what the projection outputs are
// defined against.
func MonthlyRate(annualRatePercent float64) float64 {
	return math.Pow(1+annualRatePercent/100, 1.0/12) - 1
}

// FutureValue projects a balance forward. The present value compounds at the
// effective monthly rate for totalMonths. Contributions are modeled as an
// ordinary annuity (payments at month end) for monthsContributing months,
// clamped to [0, totalMonths]; the accumulated balance then compounds without
// further contributions for the remaining months.
//
// totalMonths <= 0 returns presentValue unchanged. A zero effective rate
// degenerates the annuity to monthlyPayment * months.
func FutureValue(presentValue, monthlyPayment, annualRatePercent float64, monthsContributing, totalMonths int) float64 {
	if totalMonths <= 0 {
		return presentValue
	}
	if monthsContributing < 0 {
		monthsContributing = 0
	}
	if monthsContributing > totalMonths {
		monthsContributing = totalMonths
	}

	rate := MonthlyRate(annualRatePercent)

	// Phase 1: grow the principal and accumulate the annuity while
	// contributions continue.
	balance := presentValue * math.Pow(1+rate, float64(monthsContributing))
	if rate == 0 {
		balance += monthlyPayment * float64(monthsContributing)
	} else {
		balance += monthlyPayment * (math.Pow(1+rate, float64(monthsContributing)) - 1) / rate
	}

	// Phase 2: contribution-free compounding for the remainder.
	if remaining := totalMonths - monthsContributing; remaining > 0 {
		balance *= math.Pow(1+rate, float64(remaining))
	}
	return balance
}

// MonthsToPayoff returns the whole months needed to amortize a debt of
// presentValue with the given monthly payment and annual interest rate,
// rounded up. Returns 0 when the debt is already paid off. Returns nil when
// the payment is non-positive or does not cover the monthly interest; such a
// loan never resolves and must not produce a negative or infinite count.
func MonthsToPayoff(presentValue, monthlyPayment, annualRatePercent float64) *int {
	if presentValue <= 0 {
		zero := 0
		return &zero
	}
	if monthlyPayment <= 0 {
		return nil
	}

	rate := MonthlyRate(annualRatePercent)
	if rate == 0 {
		n := int(math.Ceil(presentValue / monthlyPayment))
		return &n
	}
	if monthlyPayment <= presentValue*rate {
		return nil
	}

	n := int(math.Ceil(math.Log(monthlyPayment/(monthlyPayment-presentValue*rate)) / math.Log(1+rate)))
	return &n
}

// MonthsUntil returns the whole months from now until target, using a fixed
// 30.44-day month. A past target returns 0; a zero target returns
// MonthsForever (contributions never stop).
func MonthsUntil(target time.Time) int {
	return monthsUntilAt(target, time.Now())
}

func monthsUntilAt(target, now time.Time) int {
	if target.IsZero() {
		return MonthsForever
	}
	days := target.Sub(now).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(math.Round(days / daysPerMonth))
}
