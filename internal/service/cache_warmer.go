package service

import (
	"context"
	"fmt"
	"time"

	"mintmate/internal/domain"
	"mintmate/internal/logger"

	"github.com/robfig/cron/v3"
)

const defaultWarmTimeout = 30 * time.Second

// durations are part of the cache key, so both the default request and the
// full year are warmed
var warmDurations = []int{domain.DefaultDuration, domain.MaxDataPoints}

// CacheWarmer periodically requests a watch-list of series so the first
// user request for them is served from cache.
type CacheWarmer struct {
	Cron                  *cron.Cron
	HistoricalDataService HistoricalDataService
	Queries               []domain.HistoricalQuery
	Timeout               time.Duration
}

func NewCacheWarmer(historicalDataService HistoricalDataService, stockSymbols, cryptoSymbols []string) *CacheWarmer {
	queries := []domain.HistoricalQuery{}
	add := func(symbols []string, assetType domain.AssetType) {
		for _, s := range symbols {
			for _, duration := range warmDurations {
				queries = append(queries, domain.HistoricalQuery{
					Symbol:   s,
					Type:     string(assetType),
					Interval: domain.DefaultInterval,
					Duration: duration,
					Strict:   true,
				})
			}
		}
	}
	add(stockSymbols, domain.AssetTypeStocks)
	add(cryptoSymbols, domain.AssetTypeCrypto)

	return &CacheWarmer{
		Cron:                  cron.New(cron.WithSeconds()),
		HistoricalDataService: historicalDataService,
		Queries:               queries,
		Timeout:               defaultWarmTimeout,
	}
}

// Register schedules the warm-up with a six field cron expression.
func (w *CacheWarmer) Register(schedule string) error {
	if _, err := w.Cron.AddFunc(schedule, func() {
		w.WarmNow(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to register cache warmer %q: %w", schedule, err)
	}
	return nil
}

func (w *CacheWarmer) Start() {
	w.Cron.Start()
	logger.FromContext(context.Background()).Infow("cache warmer started", "queries", len(w.Queries))
}

// Stop waits for a running warm-up to finish.
func (w *CacheWarmer) Stop() {
	<-w.Cron.Stop().Done()
}

// WarmNow fetches every watch-list entry once and returns how many produced
// real market data.
func (w *CacheWarmer) WarmNow(ctx context.Context) int {
	log := logger.FromContext(ctx)
	warmed := 0
	for _, q := range w.Queries {
		queryCtx, cancel := context.WithTimeout(ctx, w.Timeout)
		series, err := w.HistoricalDataService.GetHistoricalData(queryCtx, q)
		cancel()
		if err != nil {
			log.Warnw("failed to warm cache", "symbol", q.Symbol, "type", q.Type, "error", err.Error())
			continue
		}
		log.Debugw("warmed cache", "symbol", series.Symbol, "source", series.Source, "points", series.ActualDataPoints)
		warmed++
	}
	return warmed
}
