package service

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"mintmate/internal/calculator"
	"mintmate/internal/domain"
)

type ForecastService interface {
	Generate(input domain.ForecastInput) (*domain.Forecast, error)
}

type forecastServiceHandler struct {
	mu  sync.Mutex
	Rng *rand.Rand
	Now func() time.Time
}

func NewForecastService(rng *rand.Rand, now func() time.Time) ForecastService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &forecastServiceHandler{
		Rng: rng,
		Now: now,
	}
}

func validateForecastInput(input domain.ForecastInput) error {
	invalid := func(msg string) error {
		return fmt.Errorf("%w: %s", domain.ErrInvalidForecastInput, msg)
	}
	if input.InvestmentAmount <= 0 {
		return invalid("investment amount must be greater than 0")
	}
	if input.Duration < 1 || input.Duration > 30 {
		return invalid("duration must be between 1 and 30 years")
	}
	switch input.RiskAppetite {
	case domain.RiskLow, domain.RiskMedium, domain.RiskHigh:
	default:
		return invalid("risk appetite must be low, medium, or high")
	}
	if strings.TrimSpace(input.InvestmentType) == "" {
		return invalid("investment type is required")
	}
	if input.ExpectedReturn < 0 || input.ExpectedReturn > 100 {
		return invalid("expected return must be between 0 and 100")
	}
	return nil
}

func (h *forecastServiceHandler) Generate(input domain.ForecastInput) (*domain.Forecast, error) {
	rawRisk := string(input.RiskAppetite)
	input.RiskAppetite = domain.RiskAppetite(strings.ToLower(strings.TrimSpace(rawRisk)))
	if err := validateForecastInput(input); err != nil {
		return nil, err
	}

	h.mu.Lock()
	projection := calculator.ProjectGrowth(input, h.Rng)
	h.mu.Unlock()

	return &domain.Forecast{
		Forecast:       projection.Summary,
		YearWiseGrowth: projection.YearWiseGrowth,
		Insights:       forecastInsights(input, rawRisk, projection.Summary),
		RiskAnalysis:   projection.RiskAnalysis,
		Parameters: domain.ForecastParameters{
			InvestmentAmount: input.InvestmentAmount,
			Duration:         input.Duration,
			RiskAppetite:     rawRisk,
			InvestmentType:   input.InvestmentType,
			ExpectedReturn:   input.ExpectedReturn,
			Currency:         input.Currency,
			GeneratedAt:      h.Now().UTC(),
		},
	}, nil
}

var investmentTypeInsights = map[string]string{
	"stocks":       "Stock investments typically offer higher returns but come with market volatility. Consider diversifying across sectors.",
	"mutual funds": "Mutual funds provide diversification and professional management, making them suitable for most investors.",
	"crypto":       "Cryptocurrency investments are highly volatile and speculative. Only invest what you can afford to lose.",
	"bonds":        "Bonds offer stability and regular income, making them ideal for conservative investors.",
	"etfs":         "ETFs combine the benefits of stocks and mutual funds with lower fees and better liquidity.",
	"real estate":  "Real estate investments provide tangible assets and potential rental income, but require significant capital.",
}

func forecastInsights(input domain.ForecastInput, rawRisk string, summary domain.ForecastSummary) []string {
	insights := []string{}

	if summary.TotalGrowth > 0 {
		insights = append(insights, fmt.Sprintf(
			"Your investment is projected to grow by %.1f%% over %d years, potentially reaching $%.2f.",
			summary.TotalGrowth, input.Duration, summary.ProjectedValue,
		))
	} else {
		insights = append(insights, fmt.Sprintf(
			"Based on current market conditions, your investment may experience a decline of %.1f%% over %d years.",
			math.Abs(summary.TotalGrowth), input.Duration,
		))
	}

	switch input.RiskAppetite {
	case domain.RiskLow:
		insights = append(insights, fmt.Sprintf("Your conservative approach with %s risk appetite provides stability but may limit growth potential.", rawRisk))
	case domain.RiskMedium:
		insights = append(insights, fmt.Sprintf("Your balanced %s risk approach offers a good mix of growth potential and stability.", rawRisk))
	case domain.RiskHigh:
		insights = append(insights, fmt.Sprintf("Your aggressive %s risk strategy has higher growth potential but also increased volatility.", rawRisk))
	}

	if s, ok := investmentTypeInsights[strings.ToLower(input.InvestmentType)]; ok {
		insights = append(insights, s)
	}

	switch {
	case input.Duration >= 10:
		insights = append(insights, fmt.Sprintf("Long-term investments (%d+ years) typically benefit from compound growth and can weather market fluctuations.", input.Duration))
	case input.Duration >= 5:
		insights = append(insights, fmt.Sprintf("Medium-term investments (%d years) balance growth potential with manageable risk.", input.Duration))
	default:
		insights = append(insights, fmt.Sprintf("Short-term investments (%d years) may be more suitable for specific financial goals or if you need liquidity.", input.Duration))
	}

	if summary.TotalGrowth > 50 {
		insights = append(insights, "The power of compound interest is evident in your forecast, showing how small annual returns can lead to significant long-term growth.")
	}

	insights = append(insights,
		"Remember that market timing is difficult. Regular investments (dollar-cost averaging) often perform better than trying to time the market.",
		"Consider diversifying your portfolio across different asset classes to reduce risk and improve potential returns.",
	)

	return insights
}
