package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mintmate/internal/domain"
)

const twelveDataBaseUrl = "https://api.twelvedata.com"

type TwelveDataSearchResult struct {
	Symbol         string `json:"symbol"`
	InstrumentName string `json:"instrument_name"`
	InstrumentType string `json:"instrument_type"`
	Exchange       string `json:"exchange"`
	Country        string `json:"country"`
}

type TwelveDataRepository interface {
	GetMonthlySeries(ctx context.Context, symbol string) ([]domain.PricePoint, error)
	Search(ctx context.Context, query string) ([]TwelveDataSearchResult, error)
}

type twelveDataRepositoryHandler struct {
	ApiKey  string
	BaseUrl string
	Http    jsonHttpClient
	Now     func() time.Time
}

func NewTwelveDataRepository(apiKey string, baseUrl string, client *http.Client, timeout time.Duration) TwelveDataRepository {
	if baseUrl == "" {
		baseUrl = twelveDataBaseUrl
	}
	return twelveDataRepositoryHandler{
		ApiKey:  apiKey,
		BaseUrl: baseUrl,
		Http:    newJsonHttpClient(client, timeout),
		Now:     time.Now,
	}
}

type twelveDataValue struct {
	Datetime string `json:"datetime"`
	Open     string `json:"open"`
	High     string `json:"high"`
	Low      string `json:"low"`
	Close    string `json:"close"`
	Volume   string `json:"volume"`
}

type twelveDataTimeSeriesResponse struct {
	Values  []twelveDataValue `json:"values"`
	Status  string            `json:"status"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
}

// GetMonthlySeries returns points oldest first; the API lists newest first.
func (h twelveDataRepositoryHandler) GetMonthlySeries(ctx context.Context, symbol string) ([]domain.PricePoint, error) {
	end := h.Now().UTC()
	start := end.AddDate(-1, 0, 0)

	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("interval", "1month")
	params.Set("start_date", start.Format(time.DateOnly))
	params.Set("end_date", end.Format(time.DateOnly))
	params.Set("apikey", h.ApiKey)

	response := twelveDataTimeSeriesResponse{}
	err := h.Http.getJson(ctx, h.BaseUrl+"/time_series?"+params.Encode(), &response)
	if err != nil {
		return nil, fmt.Errorf("failed to get twelve data series for %s: %w", symbol, err)
	}
	if response.Status != "ok" || response.Code != 0 {
		return nil, fmt.Errorf("twelve data returned status %q code %d for %s: %s", response.Status, response.Code, symbol, response.Message)
	}

	out := []domain.PricePoint{}
	for i := len(response.Values) - 1; i >= 0; i-- {
		v := response.Values[i]
		closePrice, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			continue
		}
		date := v.Datetime
		if len(date) > 10 {
			date = date[:10]
		}
		out = append(out, domain.PricePoint{
			Date:   date,
			Open:   domain.Float64Pointer(parseFloatOr(v.Open, closePrice)),
			High:   domain.Float64Pointer(parseFloatOr(v.High, closePrice)),
			Low:    domain.Float64Pointer(parseFloatOr(v.Low, closePrice)),
			Close:  closePrice,
			Volume: domain.Float64Pointer(parseFloatOr(v.Volume, 0)),
		})
	}

	return out, nil
}

type twelveDataSearchResponse struct {
	Data   []TwelveDataSearchResult `json:"data"`
	Status string                   `json:"status"`
}

func (h twelveDataRepositoryHandler) Search(ctx context.Context, query string) ([]TwelveDataSearchResult, error) {
	params := url.Values{}
	params.Set("symbol", query)
	params.Set("apikey", h.ApiKey)

	response := twelveDataSearchResponse{}
	err := h.Http.getJson(ctx, h.BaseUrl+"/symbol_search?"+params.Encode(), &response)
	if err != nil {
		return nil, fmt.Errorf("failed to search twelve data for %s: %w", query, err)
	}

	return response.Data, nil
}

func parseFloatOr(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f == 0 {
		return fallback
	}
	return f
}
