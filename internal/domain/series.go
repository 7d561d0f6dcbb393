package domain

import (
	"fmt"
	"strings"
)

type AssetType string

const (
	AssetTypeCrypto AssetType = "crypto"
	AssetTypeStocks AssetType = "stocks"
)

// ParseAssetType treats anything that is not crypto as a stock lookup.
func ParseAssetType(s string) AssetType {
	if strings.EqualFold(strings.TrimSpace(s), string(AssetTypeCrypto)) {
		return AssetTypeCrypto
	}
	return AssetTypeStocks
}

const (
	SourceYahoo      = "Yahoo Finance"
	SourceFinnhub    = "Finnhub"
	SourceTwelveData = "Twelve Data"
	SourceCoinGecko  = "CoinGecko"
	SourceBinance    = "Binance"
	SourceSample     = "Sample Data"
)

const (
	DefaultInterval = "monthly"
	DefaultDuration = 10
	// MaxDataPoints caps every series, real or synthetic, regardless of the
	// requested duration.
	MaxDataPoints = 12
)

// PricePoint is one date-stamped sample. Providers that only publish closes
// leave the other fields nil.
type PricePoint struct {
	Date   string   `json:"date"`
	Open   *float64 `json:"open,omitempty"`
	High   *float64 `json:"high,omitempty"`
	Low    *float64 `json:"low,omitempty"`
	Close  float64  `json:"close"`
	Volume *float64 `json:"volume,omitempty"`
}

type PeriodReturn struct {
	Date   string  `json:"date"`
	Return float64 `json:"return"`
}

type MetricsSummary struct {
	CurrentPrice float64       `json:"currentPrice"`
	OldestPrice  float64       `json:"oldestPrice"`
	TotalReturn  float64       `json:"totalReturn"`
	Volatility   float64       `json:"volatility"`
	AvgReturn    float64       `json:"avgReturn"`
	BestPeriod   *PeriodReturn `json:"bestPeriod,omitempty"`
	WorstPeriod  *PeriodReturn `json:"worstPeriod,omitempty"`
	DataPoints   int           `json:"dataPoints"`
	TimeSpan     string        `json:"timeSpan"`
}

// HistoricalSeries is treated as immutable once built; the cache hands the
// same pointer to every reader.
type HistoricalSeries struct {
	Symbol            string          `json:"symbol"`
	Data              []PricePoint    `json:"data"`
	Metrics           *MetricsSummary `json:"metrics"`
	Source            string          `json:"source"`
	Note              string          `json:"note,omitempty"`
	RequestedDuration int             `json:"requestedDuration"`
	ActualDataPoints  int             `json:"actualDataPoints"`
}

// Closes returns closes in series order (oldest first).
func (s HistoricalSeries) Closes() []float64 {
	out := make([]float64, 0, len(s.Data))
	for _, p := range s.Data {
		out = append(out, p.Close)
	}
	return out
}

func (s HistoricalSeries) Dates() []string {
	out := make([]string, 0, len(s.Data))
	for _, p := range s.Data {
		out = append(out, p.Date)
	}
	return out
}

func (s HistoricalSeries) IsSample() bool {
	return s.Source == SourceSample
}

type HistoricalQuery struct {
	Symbol   string
	Type     string
	Interval string
	Duration int
	// Strict disables the synthetic fallback.
	Strict bool
}

func (q HistoricalQuery) AssetType() AssetType {
	return ParseAssetType(q.Type)
}

func (q HistoricalQuery) CacheKey() string {
	return fmt.Sprintf("%s_%s_%s_%d", q.Symbol, strings.ToLower(q.Type), q.Interval, q.Duration)
}

// PointLimit is min(duration, MaxDataPoints).
func (q HistoricalQuery) PointLimit() int {
	if q.Duration < MaxDataPoints {
		return q.Duration
	}
	return MaxDataPoints
}

type SymbolMatch struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Exchange string `json:"exchange"`
	Source   string `json:"source"`
}

func Float64Pointer(f float64) *float64 {
	return &f
}
