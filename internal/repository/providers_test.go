package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mintmate/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func jsonServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(server.Close)
	return server
}

func writeJson(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func fp(f float64) *float64 {
	return &f
}

func Test_jsonHttpClient_getJson(t *testing.T) {
	t.Run("non-2xx is an error", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusTooManyRequests, `{"error":"slow down"}`)
		})
		out := map[string]any{}
		err := newJsonHttpClient(nil, time.Second).getJson(context.Background(), server.URL, &out)
		require.ErrorContains(t, err, "429")
	})

	t.Run("2xx with html body is an error", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>blocked</html>"))
		})
		out := map[string]any{}
		err := newJsonHttpClient(nil, time.Second).getJson(context.Background(), server.URL, &out)
		require.ErrorContains(t, err, "text/html")
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"prices": [`)
		})
		out := map[string]any{}
		err := newJsonHttpClient(nil, time.Second).getJson(context.Background(), server.URL, &out)
		require.ErrorContains(t, err, "failed to decode")
	})

	t.Run("times out", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
			writeJson(w, http.StatusOK, `{}`)
		})
		out := map[string]any{}
		err := newJsonHttpClient(nil, 20*time.Millisecond).getJson(context.Background(), server.URL, &out)
		require.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
	})
}

func TestFinnhubRepository(t *testing.T) {
	t.Run("parses monthly candles", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v1/stock/candle", r.URL.Path)
			require.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
			require.Equal(t, "M", r.URL.Query().Get("resolution"))
			require.Equal(t, "key", r.URL.Query().Get("token"))
			writeJson(w, http.StatusOK, `{
				"c": [150, 160],
				"h": [155, 0],
				"l": [145, 158],
				"o": [148, 151],
				"t": [1704067200, 1706745600],
				"v": [1000, 2000],
				"s": "ok"
			}`)
		})

		points, err := NewFinnhubRepository("key", server.URL, nil, time.Second).GetMonthlyCandles(context.Background(), "AAPL")
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]domain.PricePoint{
			{Date: "2024-01-01", Open: fp(148), High: fp(155), Low: fp(145), Close: 150, Volume: fp(1000)},
			{Date: "2024-02-01", Open: fp(151), High: fp(160), Low: fp(158), Close: 160, Volume: fp(2000)},
		}, points))
	})

	t.Run("no_data status is an error", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"s":"no_data"}`)
		})
		_, err := NewFinnhubRepository("key", server.URL, nil, time.Second).GetMonthlyCandles(context.Background(), "ZZZZ")
		require.Error(t, err)
	})

	t.Run("error field is an error", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"error":"You don't have access to this resource."}`)
		})
		_, err := NewFinnhubRepository("key", server.URL, nil, time.Second).GetMonthlyCandles(context.Background(), "AAPL")
		require.ErrorContains(t, err, "access")
	})

	t.Run("search", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v1/search", r.URL.Path)
			require.Equal(t, "APP", r.URL.Query().Get("q"))
			writeJson(w, http.StatusOK, `{"count":1,"result":[{"symbol":"AAPL","description":"APPLE INC","type":"Common Stock","primaryExchange":"NASDAQ"}]}`)
		})
		results, err := NewFinnhubRepository("key", server.URL, nil, time.Second).Search(context.Background(), "APP")
		require.NoError(t, err)
		require.Equal(t, []FinnhubSearchResult{{Symbol: "AAPL", Description: "APPLE INC", Type: "Common Stock", PrimaryExchange: "NASDAQ"}}, results)
	})
}

func TestTwelveDataRepository(t *testing.T) {
	t.Run("reverses newest-first values", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/time_series", r.URL.Path)
			require.Equal(t, "1month", r.URL.Query().Get("interval"))
			writeJson(w, http.StatusOK, `{
				"meta": {"symbol": "MSFT"},
				"values": [
					{"datetime": "2024-02-01", "open": "401.5", "high": "420", "low": "397", "close": "413.64", "volume": "12345"},
					{"datetime": "2024-01-01", "open": "", "high": "", "low": "", "close": "397.58"}
				],
				"status": "ok"
			}`)
		})

		points, err := NewTwelveDataRepository("key", server.URL, nil, time.Second).GetMonthlySeries(context.Background(), "MSFT")
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]domain.PricePoint{
			{Date: "2024-01-01", Open: fp(397.58), High: fp(397.58), Low: fp(397.58), Close: 397.58, Volume: fp(0)},
			{Date: "2024-02-01", Open: fp(401.5), High: fp(420), Low: fp(397), Close: 413.64, Volume: fp(12345)},
		}, points))
	})

	t.Run("error payload", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"code":429,"message":"run out of API credits","status":"error"}`)
		})
		_, err := NewTwelveDataRepository("key", server.URL, nil, time.Second).GetMonthlySeries(context.Background(), "MSFT")
		require.ErrorContains(t, err, "credits")
	})

	t.Run("search", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/symbol_search", r.URL.Path)
			writeJson(w, http.StatusOK, `{"data":[{"symbol":"MSFT","instrument_name":"Microsoft Corp","instrument_type":"Common Stock","exchange":"NASDAQ"}],"status":"ok"}`)
		})
		results, err := NewTwelveDataRepository("key", server.URL, nil, time.Second).Search(context.Background(), "MSF")
		require.NoError(t, err)
		require.Len(t, results, 1)
		require.Equal(t, "Microsoft Corp", results[0].InstrumentName)
	})
}

func TestBinanceRepository(t *testing.T) {
	t.Run("parses kline rows", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/v3/klines", r.URL.Path)
			require.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
			require.Equal(t, "1M", r.URL.Query().Get("interval"))
			require.Equal(t, "2", r.URL.Query().Get("limit"))
			writeJson(w, http.StatusOK, `[
				[1704067200000, "42283.58", "48969.48", "38555.00", "42580.00", "1234.5", 1706745599999, "0", 1, "0", "0", "0"],
				[1706745600000, "42580.00", "63913.13", "41884.64", "61130.98", "2345.6", 1709251199999, "0", 1, "0", "0", "0"]
			]`)
		})

		points, err := NewBinanceRepository(server.URL, nil, time.Second).GetMonthlyKlines(context.Background(), "BTCUSDT", 2)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]domain.PricePoint{
			{Date: "2024-01-01", Open: fp(42283.58), High: fp(48969.48), Low: fp(38555), Close: 42580, Volume: fp(1234.5)},
			{Date: "2024-02-01", Open: fp(42580), High: fp(63913.13), Low: fp(41884.64), Close: 61130.98, Volume: fp(2345.6)},
		}, points))
	})

	t.Run("invalid symbol", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusBadRequest, `{"code":-1121,"msg":"Invalid symbol."}`)
		})
		_, err := NewBinanceRepository(server.URL, nil, time.Second).GetMonthlyKlines(context.Background(), "NOPEUSDT", 10)
		require.Error(t, err)
	})
}

func TestCoinGeckoRepository(t *testing.T) {
	t.Run("reduces daily samples to monthly closes", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/coins/bitcoin/market_chart", r.URL.Path)
			require.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
			require.Equal(t, "365", r.URL.Query().Get("days"))
			writeJson(w, http.StatusOK, `{"prices": [
				[1704067200000, 42000.0],
				[1706659200000, 43000.0],
				[1706745600000, 43500.0],
				[1709164800000, 61000.0]
			]}`)
		})

		points, err := NewCoinGeckoRepository(server.URL, nil, time.Second, nil).GetMarketChart(context.Background(), "bitcoin")
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]domain.PricePoint{
			{Date: "2024-01-31", Close: 43000},
			{Date: "2024-02-29", Close: 61000},
		}, points))
	})

	t.Run("waits on the limiter", func(t *testing.T) {
		server := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJson(w, http.StatusOK, `{"prices": []}`)
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewCoinGeckoRepository(server.URL, nil, time.Second, NewCoinGeckoLimiter()).GetMarketChart(ctx, "bitcoin")
		require.Error(t, err)
	})
}

func TestYahooRepository(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	bars := []finance.ChartBar{
		{Timestamp: 1704067200, Open: decimal.NewFromFloat(185.5), High: decimal.NewFromFloat(196), Low: decimal.NewFromFloat(180), Close: decimal.NewFromFloat(184.4), Volume: 100},
		// no close; skipped
		{Timestamp: 1706745600},
		{Timestamp: 1709251200, Close: decimal.NewFromFloat(171.1)},
	}

	var captured *chart.Params
	handler := yahooRepositoryHandler{
		Timeout: time.Second,
		Now:     func() time.Time { return now },
		fetch: func(params *chart.Params) ([]finance.ChartBar, error) {
			captured = params
			return bars, nil
		},
	}

	points, err := handler.GetMonthlyChart(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, "AAPL", captured.Symbol)
	require.Equal(t, datetime.OneMonth, captured.Interval)
	require.Equal(t, "", cmp.Diff([]domain.PricePoint{
		{Date: "2024-01-01", Open: fp(185.5), High: fp(196), Low: fp(180), Close: 184.4, Volume: fp(100)},
		{Date: "2024-03-01", Open: fp(171.1), High: fp(171.1), Low: fp(171.1), Close: 171.1, Volume: fp(0)},
	}, points))

	t.Run("fetch error", func(t *testing.T) {
		failing := handler
		failing.fetch = func(params *chart.Params) ([]finance.ChartBar, error) {
			return nil, errors.New("remote-error")
		}
		_, err := failing.GetMonthlyChart(context.Background(), "AAPL")
		require.ErrorContains(t, err, "remote-error")
	})
}
