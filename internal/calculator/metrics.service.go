package calculator

import (
	"fmt"
	"math"

	"mintmate/internal/domain"

	"github.com/montanaflynn/stats"
)

// CalculateMetrics summarizes a close series. prices and dates must be
// parallel and ordered newest first, so prices[0] is the current price.
// An empty series has no summary and returns nil.
func CalculateMetrics(prices []float64, dates []string) *domain.MetricsSummary {
	if len(prices) == 0 {
		return nil
	}

	currentPrice := prices[0]
	oldestPrice := prices[len(prices)-1]

	// a zero oldest close has no defined return; report 0 so the summary
	// always encodes as JSON
	totalReturn := 0.0
	if oldestPrice != 0 {
		totalReturn = percentChange(oldestPrice, currentPrice)
	}

	out := &domain.MetricsSummary{
		CurrentPrice: currentPrice,
		OldestPrice:  oldestPrice,
		TotalReturn:  totalReturn,
		DataPoints:   len(prices),
		TimeSpan:     fmt.Sprintf("%d periods", len(prices)),
	}

	rates := []float64{}
	for i := 1; i < len(prices); i++ {
		rate := percentChange(prices[i], prices[i-1])
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			continue
		}
		rates = append(rates, rate)

		date := ""
		if i < len(dates) {
			date = dates[i]
		}
		if out.BestPeriod == nil || rate > out.BestPeriod.Return {
			out.BestPeriod = &domain.PeriodReturn{Date: date, Return: rate}
		}
		if out.WorstPeriod == nil || rate < out.WorstPeriod.Return {
			out.WorstPeriod = &domain.PeriodReturn{Date: date, Return: rate}
		}
	}

	if len(rates) > 0 {
		// both only fail on empty input
		out.AvgReturn, _ = stats.Mean(rates)
		out.Volatility, _ = stats.StandardDeviationPopulation(rates)
	}

	return out
}

func percentChange(from, to float64) float64 {
	return (to - from) / from * 100
}
