package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mintmate/internal/domain"
	"mintmate/internal/util"
)

const (
	binanceBaseUrl        = "https://api.binance.com"
	defaultBinanceTimeout = 2 * time.Second
)

type BinanceRepository interface {
	GetMonthlyKlines(ctx context.Context, symbol string, limit int) ([]domain.PricePoint, error)
}

type binanceRepositoryHandler struct {
	BaseUrl string
	Http    jsonHttpClient
}

func NewBinanceRepository(baseUrl string, client *http.Client, timeout time.Duration) BinanceRepository {
	if baseUrl == "" {
		baseUrl = binanceBaseUrl
	}
	if timeout <= 0 {
		timeout = defaultBinanceTimeout
	}
	return binanceRepositoryHandler{
		BaseUrl: baseUrl,
		Http:    newJsonHttpClient(client, timeout),
	}
}

// GetMonthlyKlines returns up to limit monthly candles, oldest first.
func (h binanceRepositoryHandler) GetMonthlyKlines(ctx context.Context, symbol string, limit int) ([]domain.PricePoint, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("interval", "1M")
	params.Set("limit", strconv.Itoa(limit))

	// each row is [openTime, open, high, low, close, volume, closeTime, ...]
	rows := [][]json.RawMessage{}
	err := h.Http.getJson(ctx, h.BaseUrl+"/api/v3/klines?"+params.Encode(), &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get binance klines for %s: %w", symbol, err)
	}

	out := []domain.PricePoint{}
	for _, row := range rows {
		point, err := parseKline(row)
		if err != nil {
			return nil, fmt.Errorf("failed to parse binance kline for %s: %w", symbol, err)
		}
		out = append(out, *point)
	}

	return out, nil
}

func parseKline(row []json.RawMessage) (*domain.PricePoint, error) {
	if len(row) < 6 {
		return nil, fmt.Errorf("expected at least 6 fields, got %d", len(row))
	}

	var openTime int64
	if err := json.Unmarshal(row[0], &openTime); err != nil {
		return nil, fmt.Errorf("invalid open time: %w", err)
	}

	values := make([]float64, 5)
	for i := range values {
		var s string
		if err := json.Unmarshal(row[i+1], &s); err != nil {
			return nil, fmt.Errorf("invalid field %d: %w", i+1, err)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid field %d: %w", i+1, err)
		}
		values[i] = f
	}

	return &domain.PricePoint{
		Date:   util.FormatDate(time.UnixMilli(openTime)),
		Open:   domain.Float64Pointer(values[0]),
		High:   domain.Float64Pointer(values[1]),
		Low:    domain.Float64Pointer(values[2]),
		Close:  values[3],
		Volume: domain.Float64Pointer(values[4]),
	}, nil
}
