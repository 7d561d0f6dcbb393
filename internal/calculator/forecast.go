package calculator

import (
	"math"
	"math/rand"

	"mintmate/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	maxAnnualLoss = -20.0
	maxAnnualGain = 50.0
)

type riskProfile struct {
	BaseReturn float64
	Volatility float64
}

func profileFor(risk domain.RiskAppetite, expectedReturn float64) riskProfile {
	switch risk {
	case domain.RiskLow:
		return riskProfile{BaseReturn: math.Min(expectedReturn, 6), Volatility: 8}
	case domain.RiskHigh:
		return riskProfile{BaseReturn: math.Max(expectedReturn, 12), Volatility: 25}
	default:
		return riskProfile{BaseReturn: expectedReturn, Volatility: 15}
	}
}

type ProjectionResult struct {
	Summary        domain.ForecastSummary
	YearWiseGrowth []domain.YearGrowth
	RiskAnalysis   domain.RiskAnalysis
}

// ProjectGrowth compounds the investment one year at a time, each year
// drawing a noisy return around the risk profile's base. input is assumed
// to be validated; duration must be at least 1.
func ProjectGrowth(input domain.ForecastInput, rng *rand.Rand) ProjectionResult {
	profile := profileFor(input.RiskAppetite, input.ExpectedReturn)

	initial := decimal.NewFromFloat(input.InvestmentAmount)
	current := initial
	hundred := decimal.NewFromInt(100)

	growth := []domain.YearGrowth{}
	for year := 1; year <= input.Duration; year++ {
		annualReturn := profile.BaseReturn + (rng.Float64()-0.5)*profile.Volatility
		annualReturn = math.Max(annualReturn, maxAnnualLoss)
		annualReturn = math.Min(annualReturn, maxAnnualGain)

		current = current.Mul(decimal.NewFromFloat(annualReturn).Div(hundred).Add(decimal.NewFromInt(1)))
		cumulative := current.Sub(initial).Div(initial).Mul(hundred)

		growth = append(growth, domain.YearGrowth{
			Year:             year,
			Value:            current.InexactFloat64(),
			Growth:           annualReturn,
			CumulativeGrowth: cumulative.InexactFloat64(),
		})
	}

	projected := current.InexactFloat64()

	return ProjectionResult{
		Summary: domain.ForecastSummary{
			ProjectedValue:    projected,
			TotalGrowth:       percentChange(input.InvestmentAmount, projected),
			AnnualizedReturn:  math.Pow(projected/input.InvestmentAmount, 1/float64(input.Duration)) - 1,
			InitialInvestment: input.InvestmentAmount,
			Duration:          input.Duration,
		},
		YearWiseGrowth: growth,
		RiskAnalysis: domain.RiskAnalysis{
			Volatility:      profile.Volatility,
			ExpectedReturn:  profile.BaseReturn,
			RiskRewardRatio: profile.BaseReturn / profile.Volatility,
			MaxDrawdown:     profile.Volatility * 0.5,
			SharpeRatio:     profile.BaseReturn / profile.Volatility,
		},
	}
}
