package forecast_test

import (
	"testing"
	"time"

	"github.com/horizon60/Horizon60-Backend/internal/forecast"
	"github.com/horizon60/Horizon60-Backend/internal/model"
)

// TestProjectAccount tests per-account projections.
func TestProjectAccount(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("asset grows with contributions each year", func(t *testing.T) {
		settings := model.ForecastSettings{MonthlyContribution: 100, AnnualReturnPercent: 0}

		plan := forecast.ProjectAccount("a1", "Brokerage", model.AccountTypeRetirement, 1000, settings, 3, now)

		if len(plan.Years) != 3 {
			t.Fatalf("Expected 3 year points, got %d", len(plan.Years))
		}
		if plan.Years[0].Balance != 2200 {
			t.Errorf("Expected year 1 balance 2200, got %v", plan.Years[0].Balance)
		}
		if plan.Years[2].Balance != 4600 {
			t.Errorf("Expected year 3 balance 4600, got %v", plan.Years[2].Balance)
		}
		if plan.Years[2].Contributions != 3600 {
			t.Errorf("Expected 3600 contributed, got %v", plan.Years[2].Contributions)
		}
		if plan.PayoffMonths != nil {
			t.Errorf("Expected no payoff months for an asset, got %v", *plan.PayoffMonths)
		}
	})

	t.Run("contributions stop at the stop date", func(t *testing.T) {
		settings := model.ForecastSettings{
			MonthlyContribution:  500,
			AnnualReturnPercent:  0,
			ContributionStopDate: "2026-07-01", // ~6 months out
		}

		plan := forecast.ProjectAccount("a1", "Brokerage", model.AccountTypeRetirement, 1000, settings, 2, now)

		// contributions freeze after six months; zero growth keeps both
		// years at the same balance
		if plan.Years[0].Balance != 4000 {
			t.Errorf("Expected year 1 balance 4000, got %v", plan.Years[0].Balance)
		}
		if plan.Years[1].Balance != 4000 {
			t.Errorf("Expected year 2 balance 4000, got %v", plan.Years[1].Balance)
		}
	})

	t.Run("debt amortizes down and floors at zero", func(t *testing.T) {
		settings := model.ForecastSettings{MonthlyContribution: 200, AnnualReturnPercent: 0}

		plan := forecast.ProjectAccount("d1", "Car Loan", model.AccountTypeDebt, 10000, settings, 5, now)

		if plan.Years[0].Balance != 7600 {
			t.Errorf("Expected year 1 owed 7600, got %v", plan.Years[0].Balance)
		}
		if plan.Years[4].Balance != 0 {
			t.Errorf("Expected year 5 owed 0, got %v", plan.Years[4].Balance)
		}
		if plan.PayoffMonths == nil || *plan.PayoffMonths != 50 {
			t.Errorf("Expected payoff in 50 months, got %v", plan.PayoffMonths)
		}
	})

	t.Run("debt with no payment never resolves", func(t *testing.T) {
		settings := model.ForecastSettings{MonthlyContribution: 0, AnnualReturnPercent: 6}

		plan := forecast.ProjectAccount("d1", "Card", model.AccountTypeDebt, 5000, settings, 2, now)

		if plan.PayoffMonths != nil {
			t.Errorf("Expected nil payoff, got %v", *plan.PayoffMonths)
		}
		if plan.Years[0].Balance <= 5000 {
			t.Errorf("Expected balance to grow with interest, got %v", plan.Years[0].Balance)
		}
	})

	t.Run("non-positive horizon yields no series", func(t *testing.T) {
		plan := forecast.ProjectAccount("a1", "X", model.AccountTypeCash, 100, model.ForecastSettings{}, 0, now)

		if len(plan.Years) != 0 {
			t.Errorf("Expected no year points, got %d", len(plan.Years))
		}
	})
}

// TestCombinePlans tests the portfolio-wide fold.
//
// WHY: The independence year is the first year net worth reaches 25x that
// year's grown expenses. With expenses unset the flag must stay off entirely
// rather than trivially marking year one.
func TestCombinePlans(t *testing.T) {
	flatPlan := func(accountType model.AccountType, balance float64, years int) forecast.AccountPlan {
		plan := forecast.AccountPlan{AccountID: "a", Type: accountType, Balance: balance}
		for y := 1; y <= years; y++ {
			plan.Years = append(plan.Years, forecast.YearPoint{Year: y, Balance: balance})
		}
		return plan
	}

	t.Run("debt subtracts from projected net worth", func(t *testing.T) {
		plans := []forecast.AccountPlan{
			flatPlan(model.AccountTypeCash, 100000, 2),
			flatPlan(model.AccountTypeDebt, 20000, 2),
		}
		global := model.GlobalSettings{HorizonYears: 2}

		out := forecast.CombinePlans(plans, global)

		if len(out.Years) != 2 {
			t.Fatalf("Expected 2 years, got %d", len(out.Years))
		}
		if out.Years[0].NetWorth != 80000 {
			t.Errorf("Expected 80000, got %v", out.Years[0].NetWorth)
		}
	})

	t.Run("no expenses means no independence year", func(t *testing.T) {
		plans := []forecast.AccountPlan{flatPlan(model.AccountTypeCash, 1000000, 2)}
		global := model.GlobalSettings{HorizonYears: 2}

		out := forecast.CombinePlans(plans, global)

		if out.IndependenceYear != nil {
			t.Errorf("Expected nil independence year, got %v", *out.IndependenceYear)
		}
		for _, y := range out.Years {
			if y.CoversExpenses {
				t.Errorf("Year %d should not cover expenses", y.Year)
			}
		}
	})

	t.Run("independence year is the first covering year", func(t *testing.T) {
		plans := []forecast.AccountPlan{flatPlan(model.AccountTypeCash, 100000, 3)}
		global := model.GlobalSettings{
			HorizonYears:   3,
			AnnualExpenses: 3000, // 25x = 75000, covered from year one
		}

		out := forecast.CombinePlans(plans, global)

		if out.IndependenceYear == nil || *out.IndependenceYear != 1 {
			t.Errorf("Expected independence year 1, got %v", out.IndependenceYear)
		}
	})

	t.Run("expenses grow each year", func(t *testing.T) {
		plans := []forecast.AccountPlan{flatPlan(model.AccountTypeCash, 0, 2)}
		global := model.GlobalSettings{
			HorizonYears:               2,
			AnnualExpenses:             1000,
			AnnualExpenseGrowthPercent: 10,
		}

		out := forecast.CombinePlans(plans, global)

		if out.Years[0].AnnualExpenses <= 1000 {
			t.Errorf("Expected year 1 expenses above 1000, got %v", out.Years[0].AnnualExpenses)
		}
		if out.Years[1].AnnualExpenses <= out.Years[0].AnnualExpenses {
			t.Errorf("Expected expenses to grow year over year")
		}
	})
}
