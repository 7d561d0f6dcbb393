package calculator

import (
	"math"
	"math/rand"
	"testing"

	"mintmate/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestProjectGrowth(t *testing.T) {
	t.Run("compounds yearly returns within the risk band", func(t *testing.T) {
		input := domain.ForecastInput{
			InvestmentAmount: 10000,
			Duration:         10,
			RiskAppetite:     domain.RiskMedium,
			InvestmentType:   "stocks",
			ExpectedReturn:   8,
		}
		result := ProjectGrowth(input, rand.New(rand.NewSource(42)))

		require.Len(t, result.YearWiseGrowth, 10)
		previous := input.InvestmentAmount
		for i, year := range result.YearWiseGrowth {
			require.Equal(t, i+1, year.Year)
			require.GreaterOrEqual(t, year.Growth, 8-7.5)
			require.LessOrEqual(t, year.Growth, 8+7.5)
			require.InDelta(t, previous*(1+year.Growth/100), year.Value, 1e-6)
			require.InDelta(t, (year.Value-10000)/10000*100, year.CumulativeGrowth, 1e-6)
			previous = year.Value
		}

		last := result.YearWiseGrowth[9]
		require.Equal(t, last.Value, result.Summary.ProjectedValue)
		require.InDelta(t, last.CumulativeGrowth, result.Summary.TotalGrowth, 1e-6)
		require.InDelta(t, math.Pow(last.Value/10000, 0.1)-1, result.Summary.AnnualizedReturn, 1e-9)
		require.Equal(t, 10, result.Summary.Duration)
		require.Equal(t, 10000.0, result.Summary.InitialInvestment)
	})

	t.Run("same seed is reproducible", func(t *testing.T) {
		input := domain.ForecastInput{
			InvestmentAmount: 500,
			Duration:         5,
			RiskAppetite:     domain.RiskHigh,
			InvestmentType:   "crypto",
			ExpectedReturn:   20,
		}
		a := ProjectGrowth(input, rand.New(rand.NewSource(7)))
		b := ProjectGrowth(input, rand.New(rand.NewSource(7)))

		require.Equal(t, "", cmp.Diff(a, b))
	})

	t.Run("risk profiles", func(t *testing.T) {
		tests := []struct {
			name     string
			risk     domain.RiskAppetite
			expected float64
			want     domain.RiskAnalysis
		}{
			{
				name:     "low caps the base return",
				risk:     domain.RiskLow,
				expected: 10,
				want:     domain.RiskAnalysis{Volatility: 8, ExpectedReturn: 6, RiskRewardRatio: 0.75, MaxDrawdown: 4, SharpeRatio: 0.75},
			},
			{
				name:     "medium keeps the expected return",
				risk:     domain.RiskMedium,
				expected: 9,
				want:     domain.RiskAnalysis{Volatility: 15, ExpectedReturn: 9, RiskRewardRatio: 0.6, MaxDrawdown: 7.5, SharpeRatio: 0.6},
			},
			{
				name:     "high floors the base return",
				risk:     domain.RiskHigh,
				expected: 5,
				want:     domain.RiskAnalysis{Volatility: 25, ExpectedReturn: 12, RiskRewardRatio: 0.48, MaxDrawdown: 12.5, SharpeRatio: 0.48},
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result := ProjectGrowth(domain.ForecastInput{
					InvestmentAmount: 100,
					Duration:         1,
					RiskAppetite:     tt.risk,
					InvestmentType:   "bonds",
					ExpectedReturn:   tt.expected,
				}, rand.New(rand.NewSource(1)))

				require.InDelta(t, tt.want.Volatility, result.RiskAnalysis.Volatility, 1e-9)
				require.InDelta(t, tt.want.ExpectedReturn, result.RiskAnalysis.ExpectedReturn, 1e-9)
				require.InDelta(t, tt.want.RiskRewardRatio, result.RiskAnalysis.RiskRewardRatio, 1e-9)
				require.InDelta(t, tt.want.MaxDrawdown, result.RiskAnalysis.MaxDrawdown, 1e-9)
				require.InDelta(t, tt.want.SharpeRatio, result.RiskAnalysis.SharpeRatio, 1e-9)
			})
		}
	})

	t.Run("clamps extreme returns", func(t *testing.T) {
		result := ProjectGrowth(domain.ForecastInput{
			InvestmentAmount: 1000,
			Duration:         30,
			RiskAppetite:     domain.RiskHigh,
			InvestmentType:   "crypto",
			ExpectedReturn:   100,
		}, rand.New(rand.NewSource(3)))

		for _, year := range result.YearWiseGrowth {
			require.LessOrEqual(t, year.Growth, 50.0)
		}
	})
}
