package domain

import "time"

type RiskAppetite string

const (
	RiskLow    RiskAppetite = "low"
	RiskMedium RiskAppetite = "medium"
	RiskHigh   RiskAppetite = "high"
)

type ForecastInput struct {
	InvestmentAmount float64
	Duration         int
	RiskAppetite     RiskAppetite
	InvestmentType   string
	ExpectedReturn   float64
	Currency         string
}

type YearGrowth struct {
	Year             int     `json:"year"`
	Value            float64 `json:"value"`
	Growth           float64 `json:"growth"`
	CumulativeGrowth float64 `json:"cumulativeGrowth"`
}

type ForecastSummary struct {
	ProjectedValue    float64 `json:"projectedValue"`
	TotalGrowth       float64 `json:"totalGrowth"`
	AnnualizedReturn  float64 `json:"annualizedReturn"`
	InitialInvestment float64 `json:"initialInvestment"`
	Duration          int     `json:"duration"`
}

type RiskAnalysis struct {
	Volatility      float64 `json:"volatility"`
	ExpectedReturn  float64 `json:"expectedReturn"`
	RiskRewardRatio float64 `json:"riskRewardRatio"`
	MaxDrawdown     float64 `json:"maxDrawdown"`
	SharpeRatio     float64 `json:"sharpeRatio"`
}

type ForecastParameters struct {
	InvestmentAmount float64   `json:"investmentAmount"`
	Duration         int       `json:"duration"`
	RiskAppetite     string    `json:"riskAppetite"`
	InvestmentType   string    `json:"investmentType"`
	ExpectedReturn   float64   `json:"expectedReturn"`
	Currency         string    `json:"currency,omitempty"`
	GeneratedAt      time.Time `json:"generatedAt"`
}

type Forecast struct {
	Forecast       ForecastSummary    `json:"forecast"`
	YearWiseGrowth []YearGrowth       `json:"yearWiseGrowth"`
	Insights       []string           `json:"insights"`
	RiskAnalysis   RiskAnalysis       `json:"riskAnalysis"`
	Parameters     ForecastParameters `json:"parameters"`
}
