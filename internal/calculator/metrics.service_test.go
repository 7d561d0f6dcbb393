package calculator

import (
	"encoding/json"
	"math"
	"testing"

	"mintmate/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCalculateMetrics(t *testing.T) {
	t.Run("empty series", func(t *testing.T) {
		require.Nil(t, CalculateMetrics(nil, nil))
	})

	t.Run("single point", func(t *testing.T) {
		metrics := CalculateMetrics([]float64{100}, []string{"d1"})

		require.Equal(t, "", cmp.Diff(&domain.MetricsSummary{
			CurrentPrice: 100,
			OldestPrice:  100,
			TotalReturn:  0,
			DataPoints:   1,
			TimeSpan:     "1 periods",
		}, metrics))
	})

	t.Run("two points newest first", func(t *testing.T) {
		metrics := CalculateMetrics([]float64{110, 100}, []string{"d2", "d1"})

		require.InDelta(t, 10, metrics.TotalReturn, 1e-9)
		require.InDelta(t, 10, metrics.AvgReturn, 1e-9)
		require.InDelta(t, 0, metrics.Volatility, 1e-9)
		require.Equal(t, "d1", metrics.BestPeriod.Date)
		require.InDelta(t, 10, metrics.BestPeriod.Return, 1e-9)
		require.Equal(t, "d1", metrics.WorstPeriod.Date)
		require.Equal(t, 2, metrics.DataPoints)
	})

	t.Run("best and worst periods", func(t *testing.T) {
		// steps: 100 -> 120 (+20%), 120 -> 90 (-25%), 90 -> 99 (+10%)
		metrics := CalculateMetrics(
			[]float64{99, 90, 120, 100},
			[]string{"2024-04-01", "2024-03-01", "2024-02-01", "2024-01-01"},
		)

		require.InDelta(t, -1, metrics.TotalReturn, 1e-9)
		require.Equal(t, "2024-01-01", metrics.BestPeriod.Date)
		require.InDelta(t, 20, metrics.BestPeriod.Return, 1e-9)
		require.Equal(t, "2024-02-01", metrics.WorstPeriod.Date)
		require.InDelta(t, -25, metrics.WorstPeriod.Return, 1e-9)

		mean := (20.0 - 25.0 + 10.0) / 3
		variance := (math.Pow(20-mean, 2) + math.Pow(-25-mean, 2) + math.Pow(10-mean, 2)) / 3
		require.InDelta(t, mean, metrics.AvgReturn, 1e-9)
		require.InDelta(t, math.Sqrt(variance), metrics.Volatility, 1e-9)
	})

	t.Run("skips non-finite steps", func(t *testing.T) {
		metrics := CalculateMetrics([]float64{50, 0, 25}, []string{"c", "b", "a"})

		// 0 -> 50 divides by zero and is ignored
		require.InDelta(t, -100, metrics.AvgReturn, 1e-9)
		require.Equal(t, "a", metrics.BestPeriod.Date)
		require.Equal(t, "a", metrics.WorstPeriod.Date)
	})

	t.Run("zero oldest close", func(t *testing.T) {
		metrics := CalculateMetrics([]float64{5, 0}, []string{"b", "a"})

		require.Equal(t, 0.0, metrics.TotalReturn)
		require.Equal(t, 0.0, metrics.AvgReturn)
		require.Nil(t, metrics.BestPeriod)
		require.Nil(t, metrics.WorstPeriod)

		_, err := json.Marshal(metrics)
		require.NoError(t, err)
	})

	t.Run("all zero closes", func(t *testing.T) {
		metrics := CalculateMetrics([]float64{0, 0, 0}, []string{"c", "b", "a"})

		require.Equal(t, 0.0, metrics.TotalReturn)
		_, err := json.Marshal(metrics)
		require.NoError(t, err)
	})
}
