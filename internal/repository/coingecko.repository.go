package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mintmate/internal/domain"
	"mintmate/internal/util"

	"golang.org/x/time/rate"
)

const coinGeckoBaseUrl = "https://api.coingecko.com/api/v3"

type CoinGeckoRepository interface {
	GetMarketChart(ctx context.Context, coinID string) ([]domain.PricePoint, error)
}

type coinGeckoRepositoryHandler struct {
	BaseUrl string
	Http    jsonHttpClient
	Limiter *rate.Limiter
}

// NewCoinGeckoRepository throttles outbound calls client side; the public
// API allows roughly 30 calls a minute. A nil limiter disables throttling.
func NewCoinGeckoRepository(baseUrl string, client *http.Client, timeout time.Duration, limiter *rate.Limiter) CoinGeckoRepository {
	if baseUrl == "" {
		baseUrl = coinGeckoBaseUrl
	}
	return coinGeckoRepositoryHandler{
		BaseUrl: baseUrl,
		Http:    newJsonHttpClient(client, timeout),
		Limiter: limiter,
	}
}

func NewCoinGeckoLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(2*time.Second), 5)
}

type coinGeckoMarketChartResponse struct {
	// [timestampMs, price]
	Prices [][2]float64 `json:"prices"`
}

// GetMarketChart returns one close per calendar month over the last year,
// oldest first. The last daily sample of each month is used as its close.
func (h coinGeckoRepositoryHandler) GetMarketChart(ctx context.Context, coinID string) ([]domain.PricePoint, error) {
	if h.Limiter != nil {
		if err := h.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("coingecko rate limiter: %w", err)
		}
	}

	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("days", "365")
	params.Set("interval", "daily")

	endpoint := fmt.Sprintf("%s/coins/%s/market_chart?%s", h.BaseUrl, url.PathEscape(coinID), params.Encode())
	response := coinGeckoMarketChartResponse{}
	err := h.Http.getJson(ctx, endpoint, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to get coingecko market chart for %s: %w", coinID, err)
	}

	return monthlyCloses(response.Prices), nil
}

func monthlyCloses(samples [][2]float64) []domain.PricePoint {
	out := []domain.PricePoint{}
	lastMonth := ""
	for _, sample := range samples {
		t := time.UnixMilli(int64(sample[0])).UTC()
		month := util.MonthKey(t)
		point := domain.PricePoint{
			Date:  util.FormatDate(t),
			Close: sample[1],
		}
		if month == lastMonth {
			out[len(out)-1] = point
			continue
		}
		out = append(out, point)
		lastMonth = month
	}
	return out
}
