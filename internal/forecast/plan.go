package forecast

import (
	"math"
	"time"

	"github.com/horizon60/Horizon60-Backend/internal/model"
)

// dateLayout is the YYYY-MM-DD form used by settings and snapshots.
const dateLayout = "2006-01-02"

// IndependenceMultiple is the expense multiple at which the portfolio is
// considered to cover annual spending (the 4% withdrawal rule).
const IndependenceMultiple = 25.0

// YearPoint is one year of a projection series.
type YearPoint struct {
	Year          int     `json:"year"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"` // cumulative contributions to date
	Growth        float64 `json:"growth"`        // cumulative compound growth to date
}

// AccountPlan is a full per-account projection over the horizon.
type AccountPlan struct {
	AccountID    string            `json:"accountId"`
	Name         string            `json:"name"`
	Type         model.AccountType `json:"type"`
	Balance      float64           `json:"balance"`
	Years        []YearPoint       `json:"years"`
	PayoffMonths *int              `json:"payoffMonths,omitempty"` // debts only; nil when payment never resolves
}

// ProjectAccount projects a single account's balance across each year of the
// horizon from its current balance and forecast settings, evaluated at now.
//
// Asset accounts compound with ordinary-annuity contributions until the
// contribution stop date. Debt accounts amortize down toward zero; their
// series reports the remaining amount owed as a positive magnitude.
func ProjectAccount(acctID, name string, acctType model.AccountType, balance float64, s model.ForecastSettings, horizonYears int, now time.Time) AccountPlan {
	plan := AccountPlan{
		AccountID: acctID,
		Name:      name,
		Type:      acctType,
		Balance:   balance,
	}
	if horizonYears <= 0 {
		return plan
	}

	if acctType.IsDebt() {
		plan.Years = projectDebt(balance, s, horizonYears)
		plan.PayoffMonths = MonthsToPayoff(balance, s.MonthlyContribution, s.AnnualReturnPercent)
		return plan
	}

	monthsContributing := MonthsForever
	if s.ContributionStopDate != "" {
		if stop, err := time.Parse(dateLayout, s.ContributionStopDate); err == nil {
			monthsContributing = monthsUntilAt(stop, now)
		}
	}

	plan.Years = make([]YearPoint, 0, horizonYears)
	for year := 1; year <= horizonYears; year++ {
		totalMonths := year * 12
		contribMonths := monthsContributing
		if contribMonths > totalMonths {
			contribMonths = totalMonths
		}
		fv := FutureValue(balance, s.MonthlyContribution, s.AnnualReturnPercent, contribMonths, totalMonths)
		contributed := s.MonthlyContribution * float64(contribMonths)
		plan.Years = append(plan.Years, YearPoint{
			Year:          year,
			Balance:       fv,
			Contributions: contributed,
			Growth:        fv - balance - contributed,
		})
	}
	return plan
}

// projectDebt builds the remaining-balance series for an amortizing debt.
// The balance floors at zero once the payment schedule retires the loan; a
// payment that does not cover interest grows the balance instead.
func projectDebt(balance float64, s model.ForecastSettings, horizonYears int) []YearPoint {
	rate := MonthlyRate(s.AnnualReturnPercent)
	years := make([]YearPoint, 0, horizonYears)
	for year := 1; year <= horizonYears; year++ {
		m := float64(year * 12)
		var owed float64
		if rate == 0 {
			owed = balance - s.MonthlyContribution*m
		} else {
			growth := math.Pow(1+rate, m)
			owed = balance*growth - s.MonthlyContribution*(growth-1)/rate
		}
		if owed < 0 {
			owed = 0
		}
		paid := balance - owed
		years = append(years, YearPoint{
			Year:          year,
			Balance:       owed,
			Contributions: s.MonthlyContribution * m,
			Growth:        -paid, // principal retired so far
		})
	}
	return years
}

// PortfolioPlan is the portfolio-wide projection: net worth per year with
// the year, if any, at which net worth first covers projected expenses.
type PortfolioPlan struct {
	Years            []PortfolioYear `json:"years"`
	IndependenceYear *int            `json:"independenceYear,omitempty"`
	Accounts         []AccountPlan   `json:"accounts"`
}

// PortfolioYear is one year of the combined projection.
type PortfolioYear struct {
	Year           int     `json:"year"`
	NetWorth       float64 `json:"netWorth"`
	AnnualExpenses float64 `json:"annualExpenses"`
	CoversExpenses bool    `json:"coversExpenses"`
}

// CombinePlans folds per-account plans into a portfolio series. Debt plans
// subtract their remaining balance from each year's net worth. The
// independence year is the first year projected net worth reaches
// IndependenceMultiple times that year's expense level; nil when expenses
// are unset or the horizon never reaches it.
func CombinePlans(plans []AccountPlan, global model.GlobalSettings) PortfolioPlan {
	out := PortfolioPlan{Accounts: plans}
	if global.HorizonYears <= 0 {
		return out
	}

	out.Years = make([]PortfolioYear, global.HorizonYears)
	for i := range out.Years {
		year := i + 1
		var net float64
		for _, p := range plans {
			if len(p.Years) < year {
				continue
			}
			if p.Type.IsDebt() {
				net -= p.Years[i].Balance
			} else {
				net += p.Years[i].Balance
			}
		}
		expenses := global.AnnualExpenses * math.Pow(1+global.AnnualExpenseGrowthPercent/100, float64(year))
		covers := global.AnnualExpenses > 0 && net >= expenses*IndependenceMultiple
		out.Years[i] = PortfolioYear{
			Year:           year,
			NetWorth:       net,
			AnnualExpenses: expenses,
			CoversExpenses: covers,
		}
		if covers && out.IndependenceYear == nil {
			y := year
			out.IndependenceYear = &y
		}
	}
	return out
}
