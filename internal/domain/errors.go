package domain

import "errors"

var (
	ErrNoStockProvider      = errors.New("stock data API keys not configured; set FINNHUB_API_KEY or TWELVE_DATA_API_KEY")
	ErrNoData               = errors.New("unable to fetch historical data")
	ErrLlmNotConfigured     = errors.New("AI service is not configured; set GROQ_API_KEY")
	ErrInvalidForecastInput = errors.New("invalid forecast input")
	ErrMissingSymbol        = errors.New("symbol is required")
	ErrInvalidAdvisorInput  = errors.New("invalid advisor request")
)
