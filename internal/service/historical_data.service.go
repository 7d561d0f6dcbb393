package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mintmate/internal/calculator"
	"mintmate/internal/domain"
	"mintmate/internal/logger"
	"mintmate/internal/metrics"
	"mintmate/internal/repository"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type HistoricalDataService interface {
	GetHistoricalData(ctx context.Context, query domain.HistoricalQuery) (*domain.HistoricalSeries, error)
}

type historicalDataServiceHandler struct {
	Cache                repository.HistoricalCacheRepository
	YahooRepository      repository.YahooRepository
	FinnhubRepository    repository.FinnhubRepository
	TwelveDataRepository repository.TwelveDataRepository
	CoinGeckoRepository  repository.CoinGeckoRepository
	BinanceRepository    repository.BinanceRepository
	SampleDataGenerator  SampleDataGenerator

	group *singleflight.Group
}

// NewHistoricalDataService takes a nil Finnhub or Twelve Data repository to
// mean that provider has no API key configured.
func NewHistoricalDataService(
	cache repository.HistoricalCacheRepository,
	yahooRepository repository.YahooRepository,
	finnhubRepository repository.FinnhubRepository,
	twelveDataRepository repository.TwelveDataRepository,
	coinGeckoRepository repository.CoinGeckoRepository,
	binanceRepository repository.BinanceRepository,
	sampleDataGenerator SampleDataGenerator,
) HistoricalDataService {
	return historicalDataServiceHandler{
		Cache:                cache,
		YahooRepository:      yahooRepository,
		FinnhubRepository:    finnhubRepository,
		TwelveDataRepository: twelveDataRepository,
		CoinGeckoRepository:  coinGeckoRepository,
		BinanceRepository:    binanceRepository,
		SampleDataGenerator:  sampleDataGenerator,
		group:                &singleflight.Group{},
	}
}

// providerStrategy is one upstream in priority order.
type providerStrategy struct {
	Name  string
	Fetch func(ctx context.Context) ([]domain.PricePoint, error)
}

// providerResult keeps the failure reason for logging; selection only looks
// at whether points came back.
type providerResult struct {
	Name   string
	Points []domain.PricePoint
	Err    error
}

func (r providerResult) ok() bool {
	return r.Err == nil && len(r.Points) > 0
}

func normalizeQuery(query domain.HistoricalQuery) domain.HistoricalQuery {
	query.Symbol = NormalizeSymbol(query.Symbol)
	query.Type = strings.ToLower(strings.TrimSpace(query.Type))
	if query.Interval == "" {
		query.Interval = domain.DefaultInterval
	}
	if query.Duration <= 0 {
		query.Duration = domain.DefaultDuration
	}
	return query
}

func (h historicalDataServiceHandler) GetHistoricalData(ctx context.Context, query domain.HistoricalQuery) (*domain.HistoricalSeries, error) {
	query = normalizeQuery(query)
	if query.Symbol == "" {
		return nil, domain.ErrMissingSymbol
	}

	key := query.CacheKey()
	if series, ok := h.lookup(key, query.Strict); ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return series, nil
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()

	if query.AssetType() == domain.AssetTypeStocks && h.FinnhubRepository == nil && h.TwelveDataRepository == nil {
		return nil, domain.ErrNoStockProvider
	}

	flightKey := key
	if query.Strict {
		flightKey += "_strict"
	}

	// a caller hanging up should not fail everyone else waiting on this key
	detached := context.WithoutCancel(ctx)
	result, err, _ := h.group.Do(flightKey, func() (any, error) {
		if series, ok := h.lookup(key, query.Strict); ok {
			return series, nil
		}
		return h.fetch(detached, query)
	})
	if err != nil {
		return nil, err
	}

	series := result.(*domain.HistoricalSeries)
	metrics.SeriesServed.WithLabelValues(series.Source).Inc()
	return series, nil
}

func (h historicalDataServiceHandler) lookup(key string, strict bool) (*domain.HistoricalSeries, bool) {
	series, ok := h.Cache.Get(key)
	if !ok {
		return nil, false
	}
	if strict && series.IsSample() {
		return nil, false
	}
	return series, true
}

func (h historicalDataServiceHandler) fetch(ctx context.Context, query domain.HistoricalQuery) (*domain.HistoricalSeries, error) {
	log := logger.FromContext(ctx).With("symbol", query.Symbol, "type", query.Type)

	var strategies []providerStrategy
	if query.AssetType() == domain.AssetTypeCrypto {
		strategies = h.cryptoStrategies(query)
	} else {
		strategies = h.stockStrategies(query)
	}

	profile := domain.NewProfile()
	results := runStrategies(ctx, strategies, profile)
	profile.End()
	if timings, err := profile.ToJsonBytes(); err == nil {
		log.Debugw("provider timings", "spans", string(timings), "totalMs", *profile.TotalMs)
	}

	var series *domain.HistoricalSeries
	for _, result := range results {
		if !result.ok() {
			reason := "no data points"
			if result.Err != nil {
				reason = result.Err.Error()
			}
			log.Warnw("provider returned no usable data", "provider", result.Name, "reason", reason)
			continue
		}
		series = buildSeries(query, result.Name, "", result.Points)
		break
	}

	if series == nil {
		if query.Strict {
			return nil, fmt.Errorf("%w for %s: all providers failed", domain.ErrNoData, query.Symbol)
		}
		log.Infow("no provider data, generating sample data")
		sample := h.SampleDataGenerator.Generate(query.Symbol, query.Duration)
		series = buildSeries(query, sample.Source, sample.Note, sample.Data)
	}

	h.Cache.Put(query.CacheKey(), series)
	metrics.CacheSize.Set(float64(h.Cache.Len()))

	return series, nil
}

func (h historicalDataServiceHandler) cryptoStrategies(query domain.HistoricalQuery) []providerStrategy {
	coinID := GetCoinGeckoID(query.Symbol)
	pair := BinanceSymbol(query.Symbol)

	return []providerStrategy{
		{
			Name: domain.SourceCoinGecko,
			Fetch: func(ctx context.Context) ([]domain.PricePoint, error) {
				return h.CoinGeckoRepository.GetMarketChart(ctx, coinID)
			},
		},
		{
			Name: domain.SourceBinance,
			Fetch: func(ctx context.Context) ([]domain.PricePoint, error) {
				return h.BinanceRepository.GetMonthlyKlines(ctx, pair, query.PointLimit())
			},
		},
	}
}

func (h historicalDataServiceHandler) stockStrategies(query domain.HistoricalQuery) []providerStrategy {
	strategies := []providerStrategy{
		{
			Name: domain.SourceYahoo,
			Fetch: func(ctx context.Context) ([]domain.PricePoint, error) {
				return h.YahooRepository.GetMonthlyChart(ctx, query.Symbol)
			},
		},
	}
	if h.FinnhubRepository != nil {
		strategies = append(strategies, providerStrategy{
			Name: domain.SourceFinnhub,
			Fetch: func(ctx context.Context) ([]domain.PricePoint, error) {
				return h.FinnhubRepository.GetMonthlyCandles(ctx, query.Symbol)
			},
		})
	}
	if h.TwelveDataRepository != nil {
		strategies = append(strategies, providerStrategy{
			Name: domain.SourceTwelveData,
			Fetch: func(ctx context.Context) ([]domain.PricePoint, error) {
				return h.TwelveDataRepository.GetMonthlySeries(ctx, query.Symbol)
			},
		})
	}
	return strategies
}

// runStrategies calls every provider concurrently and waits for all of
// them. Results keep the strategies' priority order.
func runStrategies(ctx context.Context, strategies []providerStrategy, profile *domain.Profile) []providerResult {
	results := make([]providerResult, len(strategies))

	g := errgroup.Group{}
	for i, strategy := range strategies {
		i, strategy := i, strategy
		g.Go(func() error {
			start := time.Now()
			span := profile.StartSpan(strategy.Name)
			points, err := strategy.Fetch(ctx)
			results[i] = providerResult{
				Name:   strategy.Name,
				Points: points,
				Err:    err,
			}

			outcome := metrics.ResultOk
			if err != nil {
				outcome = metrics.ResultError
			} else if len(points) == 0 {
				outcome = metrics.ResultEmpty
			}
			span.End(outcome)
			metrics.ObserveProvider(strategy.Name, start, outcome)

			// failures are carried in the result, never cancel siblings
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// buildSeries keeps the trailing window of points (oldest first) and
// computes metrics over it newest first.
func buildSeries(query domain.HistoricalQuery, source, note string, points []domain.PricePoint) *domain.HistoricalSeries {
	limit := query.PointLimit()
	if len(points) > limit {
		points = points[len(points)-limit:]
	}
	data := make([]domain.PricePoint, len(points))
	copy(data, points)

	prices := make([]float64, 0, len(data))
	dates := make([]string, 0, len(data))
	for i := len(data) - 1; i >= 0; i-- {
		prices = append(prices, data[i].Close)
		dates = append(dates, data[i].Date)
	}

	return &domain.HistoricalSeries{
		Symbol:            query.Symbol,
		Data:              data,
		Metrics:           calculator.CalculateMetrics(prices, dates),
		Source:            source,
		Note:              note,
		RequestedDuration: query.Duration,
		ActualDataPoints:  len(data),
	}
}
