package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mintmate/cmd"
	"mintmate/internal/domain"
	"mintmate/internal/logger"
	"mintmate/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

func loadDependencies() (*cmd.Dependencies, error) {
	cfg, err := util.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return cmd.InitializeDependencies(cfg)
}

func runServe(ctx context.Context) error {
	deps, err := loadDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(deps.ApiHandler)

	if deps.CacheWarmer != nil {
		log := logger.FromContext(ctx)
		log.Infow("starting cache warmer", "schedule", deps.Config.Warmer.Schedule, "queries", len(deps.CacheWarmer.Queries))
		deps.CacheWarmer.Start()
		defer deps.CacheWarmer.Stop()
	}

	return deps.ApiHandler.StartApi(deps.Config.Port)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the http api",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runServe(c.Context())
		},
	}
}

type historyRow struct {
	Symbol string  `csv:"symbol"`
	Date   string  `csv:"date"`
	Close  float64 `csv:"close"`
	Source string  `csv:"source"`
}

func writeHistoryCsv(w io.Writer, series *domain.HistoricalSeries) error {
	rows := make([]historyRow, 0, len(series.Data))
	for _, p := range series.Data {
		rows = append(rows, historyRow{
			Symbol: series.Symbol,
			Date:   p.Date,
			Close:  p.Close,
			Source: series.Source,
		})
	}
	return gocsv.Marshal(&rows, w)
}

func writeJson(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func historyCmd() *cobra.Command {
	var (
		assetType string
		duration  int
		strict    bool
		asCsv     bool
	)
	c := &cobra.Command{
		Use:   "history SYMBOL",
		Short: "Fetch a monthly price series",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := loadDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps.ApiHandler)

			series, err := deps.ApiHandler.HistoricalDataService.GetHistoricalData(c.Context(), domain.HistoricalQuery{
				Symbol:   args[0],
				Type:     assetType,
				Interval: domain.DefaultInterval,
				Duration: duration,
				Strict:   strict,
			})
			if err != nil {
				return fmt.Errorf("failed to get history for %s: %w", args[0], err)
			}

			if asCsv {
				return writeHistoryCsv(c.OutOrStdout(), series)
			}
			return writeJson(c.OutOrStdout(), series)
		},
	}
	c.Flags().StringVar(&assetType, "type", string(domain.AssetTypeStocks), "stocks or crypto")
	c.Flags().IntVar(&duration, "duration", domain.DefaultDuration, "number of monthly points")
	c.Flags().BoolVar(&strict, "strict", false, "fail instead of returning sample data")
	c.Flags().BoolVar(&asCsv, "csv", false, "write csv instead of json")
	return c
}

func searchCmd() *cobra.Command {
	var assetType string
	c := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search stock or crypto symbols",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := loadDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps.ApiHandler)

			matches, err := deps.ApiHandler.SymbolSearchService.Search(c.Context(), strings.Join(args, " "), assetType)
			if err != nil {
				return err
			}
			return writeJson(c.OutOrStdout(), matches)
		},
	}
	c.Flags().StringVar(&assetType, "type", "stocks", "stocks or crypto")
	return c
}

func forecastCmd() *cobra.Command {
	input := domain.ForecastInput{}
	var risk string
	c := &cobra.Command{
		Use:   "forecast",
		Short: "Project an investment forward year by year",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := loadDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps.ApiHandler)

			input.RiskAppetite = domain.RiskAppetite(risk)
			forecast, err := deps.ApiHandler.ForecastService.Generate(input)
			if err != nil {
				return err
			}
			return writeJson(c.OutOrStdout(), forecast)
		},
	}
	c.Flags().Float64Var(&input.InvestmentAmount, "amount", 10000, "initial investment")
	c.Flags().IntVar(&input.Duration, "years", 5, "projection length in years")
	c.Flags().StringVar(&risk, "risk", string(domain.RiskMedium), "low, medium or high")
	c.Flags().StringVar(&input.InvestmentType, "investment-type", "stocks", `stocks, bonds, crypto, etfs, "mutual funds" or "real estate"`)
	c.Flags().Float64Var(&input.ExpectedReturn, "expected-return", 8, "expected annual return in percent")
	c.Flags().StringVar(&input.Currency, "currency", "USD", "currency code")
	return c
}
