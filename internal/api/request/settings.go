package request

// ForecastSettingsRequest saves an account's projection inputs.
type ForecastSettingsRequest struct {
	MonthlyContribution  float64 `json:"monthlyContribution"`
	AnnualReturnPercent  float64 `json:"annualReturnPercent"`
	ContributionStopDate string  `json:"contributionStopDate"`
	LoanOriginationDate  string  `json:"loanOriginationDate"`
	TermMonths           int     `json:"termMonths"`
}

// GlobalSettingsRequest saves the portfolio-wide projection inputs.
type GlobalSettingsRequest struct {
	HorizonYears               int     `json:"horizonYears"`
	AnnualExpenses             float64 `json:"annualExpenses"`
	AnnualExpenseGrowthPercent float64 `json:"annualExpenseGrowthPercent"`
}

// CredentialRequest stores the market-data API token.
type CredentialRequest struct {
	Token string `json:"token"`
}
