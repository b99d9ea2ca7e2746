package model

// ForecastSettings holds the per-account projection inputs. Asset accounts
// use MonthlyContribution/ContributionStopDate; debt accounts use
// MonthlyContribution as the monthly payment plus the loan fields.
type ForecastSettings struct {
	AccountID            string  `json:"accountId"`
	MonthlyContribution  float64 `json:"monthlyContribution"`
	AnnualReturnPercent  float64 `json:"annualReturnPercent"`
	ContributionStopDate string  `json:"contributionStopDate,omitempty"` // YYYY-MM-DD, empty = never stop
	LoanOriginationDate  string  `json:"loanOriginationDate,omitempty"`  // YYYY-MM-DD
	TermMonths           int     `json:"termMonths,omitempty"`
}

// GlobalSettings holds the portfolio-wide projection inputs.
type GlobalSettings struct {
	HorizonYears               int     `json:"horizonYears"`
	AnnualExpenses             float64 `json:"annualExpenses"`
	AnnualExpenseGrowthPercent float64 `json:"annualExpenseGrowthPercent"`
}

// DefaultGlobalSettings returns the settings used before the user saves any.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		HorizonYears:               30,
		AnnualExpenses:             0,
		AnnualExpenseGrowthPercent: 3,
	}
}
