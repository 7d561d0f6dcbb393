package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"mintmate/api"
	"mintmate/internal/logger"
	"mintmate/internal/repository"
	"mintmate/internal/service"
	"mintmate/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Db == nil {
		return
	}
	if err := handler.Db.Close(); err != nil {
		logger.FromContext(context.Background()).Errorw("failed to close db", "error", err.Error())
	}
}

// Dependencies holds everything the entrypoints need besides the api handler.
type Dependencies struct {
	Config      *util.Config
	ApiHandler  *api.ApiHandler
	CacheWarmer *service.CacheWarmer
}

func InitializeDependencies(cfg *util.Config) (*Dependencies, error) {
	log := logger.FromContext(context.Background())

	var dbConn *sql.DB
	apiRequestRepository := repository.NewNoopApiRequestRepository()
	if cfg.Db.Url != "" {
		var err error
		dbConn, err = sql.Open("postgres", cfg.Db.Url)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		apiRequestRepository = repository.NewApiRequestRepository()
	} else {
		log.Infow("no database configured, api requests will not be recorded")
	}

	httpClient := &http.Client{}
	providers := cfg.Providers

	// providers without an api key stay nil and are skipped
	var finnhubRepository repository.FinnhubRepository
	if providers.Finnhub.ApiKey != "" {
		finnhubRepository = repository.NewFinnhubRepository(providers.Finnhub.ApiKey, providers.Finnhub.BaseUrl, httpClient, providers.Finnhub.Timeout)
	}
	var twelveDataRepository repository.TwelveDataRepository
	if providers.TwelveData.ApiKey != "" {
		twelveDataRepository = repository.NewTwelveDataRepository(providers.TwelveData.ApiKey, providers.TwelveData.BaseUrl, httpClient, providers.TwelveData.Timeout)
	}
	var llmRepository repository.LlmRepository
	if cfg.Llm.ApiKey != "" {
		llmRepository = repository.NewLlmRepository(repository.LlmConfig{
			ApiKey:     cfg.Llm.ApiKey,
			BaseUrl:    cfg.Llm.BaseUrl,
			Model:      cfg.Llm.Model,
			Timeout:    cfg.Llm.Timeout,
			MaxRetries: cfg.Llm.MaxRetries,
			RetryDelay: cfg.Llm.RetryDelay,
		})
	} else {
		log.Infow("GROQ_API_KEY not set, ai routes will be unavailable")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	historicalDataService := service.NewHistoricalDataService(
		repository.NewHistoricalCacheRepository(cfg.Cache.Ttl, cfg.Cache.Capacity, time.Now),
		repository.NewYahooRepository(providers.Yahoo.Timeout),
		finnhubRepository,
		twelveDataRepository,
		repository.NewCoinGeckoRepository(providers.CoinGecko.BaseUrl, httpClient, providers.CoinGecko.Timeout, repository.NewCoinGeckoLimiter()),
		repository.NewBinanceRepository(providers.Binance.BaseUrl, httpClient, providers.Binance.Timeout),
		service.NewSampleDataGenerator(rand.New(rand.NewSource(rng.Int63())), time.Now),
	)

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		HistoricalDataService: historicalDataService,
		SymbolSearchService:   service.NewSymbolSearchService(finnhubRepository, twelveDataRepository),
		ForecastService:       service.NewForecastService(rand.New(rand.NewSource(rng.Int63())), time.Now),
		AdvisorService:        service.NewAdvisorService(llmRepository, time.Now),
		ApiRequestRepository:  apiRequestRepository,
		AllowedOrigins:        cfg.Cors.AllowedOrigins,
	}

	var cacheWarmer *service.CacheWarmer
	if cfg.Warmer.Schedule != "" {
		cacheWarmer = service.NewCacheWarmer(historicalDataService, cfg.Warmer.Symbols, cfg.Warmer.Crypto)
		if err := cacheWarmer.Register(cfg.Warmer.Schedule); err != nil {
			return nil, err
		}
	}

	return &Dependencies{
		Config:      cfg,
		ApiHandler:  apiHandler,
		CacheWarmer: cacheWarmer,
	}, nil
}
