package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mintmate/internal/domain"
)

const finnhubBaseUrl = "https://finnhub.io"

type FinnhubSearchResult struct {
	Symbol          string `json:"symbol"`
	Description     string `json:"description"`
	DisplaySymbol   string `json:"displaySymbol"`
	Type            string `json:"type"`
	PrimaryExchange string `json:"primaryExchange"`
}

type FinnhubRepository interface {
	GetMonthlyCandles(ctx context.Context, symbol string) ([]domain.PricePoint, error)
	Search(ctx context.Context, query string) ([]FinnhubSearchResult, error)
}

type finnhubRepositoryHandler struct {
	ApiKey  string
	BaseUrl string
	Http    jsonHttpClient
	Now     func() time.Time
}

func NewFinnhubRepository(apiKey string, baseUrl string, client *http.Client, timeout time.Duration) FinnhubRepository {
	if baseUrl == "" {
		baseUrl = finnhubBaseUrl
	}
	return finnhubRepositoryHandler{
		ApiKey:  apiKey,
		BaseUrl: baseUrl,
		Http:    newJsonHttpClient(client, timeout),
		Now:     time.Now,
	}
}

type finnhubCandleResponse struct {
	Close     []float64 `json:"c"`
	High      []float64 `json:"h"`
	Low       []float64 `json:"l"`
	Open      []float64 `json:"o"`
	Timestamp []int64   `json:"t"`
	Volume    []float64 `json:"v"`
	Status    string    `json:"s"`
	Error     string    `json:"error"`
}

func (h finnhubRepositoryHandler) GetMonthlyCandles(ctx context.Context, symbol string) ([]domain.PricePoint, error) {
	to := h.Now().Unix()
	from := to - 365*24*60*60

	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("resolution", "M")
	params.Set("from", fmt.Sprintf("%d", from))
	params.Set("to", fmt.Sprintf("%d", to))
	params.Set("token", h.ApiKey)

	response := finnhubCandleResponse{}
	err := h.Http.getJson(ctx, h.BaseUrl+"/api/v1/stock/candle?"+params.Encode(), &response)
	if err != nil {
		return nil, fmt.Errorf("failed to get finnhub candles for %s: %w", symbol, err)
	}
	if response.Error != "" {
		return nil, fmt.Errorf("finnhub returned error for %s: %s", symbol, response.Error)
	}
	if response.Status != "ok" {
		return nil, fmt.Errorf("finnhub returned status %q for %s", response.Status, symbol)
	}

	out := []domain.PricePoint{}
	for i, ts := range response.Timestamp {
		if i >= len(response.Close) {
			break
		}
		closePrice := response.Close[i]
		out = append(out, domain.PricePoint{
			Date:   unixToDate(ts),
			Open:   domain.Float64Pointer(valueOr(response.Open, i, closePrice)),
			High:   domain.Float64Pointer(valueOr(response.High, i, closePrice)),
			Low:    domain.Float64Pointer(valueOr(response.Low, i, closePrice)),
			Close:  closePrice,
			Volume: domain.Float64Pointer(valueOr(response.Volume, i, 0)),
		})
	}

	return out, nil
}

type finnhubSearchResponse struct {
	Count  int                   `json:"count"`
	Result []FinnhubSearchResult `json:"result"`
}

func (h finnhubRepositoryHandler) Search(ctx context.Context, query string) ([]FinnhubSearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("token", h.ApiKey)

	response := finnhubSearchResponse{}
	err := h.Http.getJson(ctx, h.BaseUrl+"/api/v1/search?"+params.Encode(), &response)
	if err != nil {
		return nil, fmt.Errorf("failed to search finnhub for %s: %w", query, err)
	}

	return response.Result, nil
}

// valueOr treats a missing or zero entry as absent.
func valueOr(values []float64, i int, fallback float64) float64 {
	if i < len(values) && values[i] != 0 {
		return values[i]
	}
	return fallback
}
