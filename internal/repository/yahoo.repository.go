package repository

import (
	"context"
	"fmt"
	"time"

	"mintmate/internal/domain"

	"github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type YahooRepository interface {
	GetMonthlyChart(ctx context.Context, symbol string) ([]domain.PricePoint, error)
}

type chartFetcher func(params *chart.Params) ([]finance.ChartBar, error)

type yahooRepositoryHandler struct {
	Timeout time.Duration
	Now     func() time.Time
	fetch   chartFetcher
}

func NewYahooRepository(timeout time.Duration) YahooRepository {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return yahooRepositoryHandler{
		Timeout: timeout,
		Now:     time.Now,
		fetch:   fetchChartBars,
	}
}

func fetchChartBars(params *chart.Params) ([]finance.ChartBar, error) {
	iter := chart.Get(params)

	bars := []finance.ChartBar{}
	for iter.Next() {
		bars = append(bars, *iter.Bar())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return bars, nil
}

// GetMonthlyChart returns the trailing year of monthly bars, oldest first.
func (h yahooRepositoryHandler) GetMonthlyChart(ctx context.Context, symbol string) ([]domain.PricePoint, error) {
	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	now := h.Now()
	start := now.AddDate(-1, 0, 0)
	params := &chart.Params{
		Params:   finance.Params{Context: &ctx},
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneMonth,
	}

	bars, err := h.fetch(params)
	if err != nil {
		return nil, fmt.Errorf("failed to get yahoo chart for %s: %w", symbol, err)
	}

	return barsToPoints(bars), nil
}

// barsToPoints drops bars without a close; other missing fields fall back to
// the close, or zero for volume.
func barsToPoints(bars []finance.ChartBar) []domain.PricePoint {
	out := []domain.PricePoint{}
	for _, bar := range bars {
		if bar.Close.IsZero() {
			continue
		}
		closePrice := bar.Close.InexactFloat64()
		orClose := func(f float64) *float64 {
			if f == 0 {
				return domain.Float64Pointer(closePrice)
			}
			return domain.Float64Pointer(f)
		}

		out = append(out, domain.PricePoint{
			Date:   time.Unix(int64(bar.Timestamp), 0).UTC().Format(time.DateOnly),
			Open:   orClose(bar.Open.InexactFloat64()),
			High:   orClose(bar.High.InexactFloat64()),
			Low:    orClose(bar.Low.InexactFloat64()),
			Close:  closePrice,
			Volume: domain.Float64Pointer(float64(bar.Volume)),
		})
	}
	return out
}
