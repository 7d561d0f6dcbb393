package main

import (
	"bytes"
	"strings"
	"testing"

	"mintmate/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_writeHistoryCsv(t *testing.T) {
	var buf bytes.Buffer
	err := writeHistoryCsv(&buf, &domain.HistoricalSeries{
		Symbol: "AAPL",
		Source: domain.SourceYahoo,
		Data: []domain.PricePoint{
			{Date: "2024-01-01", Close: 100.5},
			{Date: "2024-02-01", Close: 101.25},
		},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{
		"symbol,date,close,source",
		"AAPL,2024-01-01,100.5,Yahoo Finance",
		"AAPL,2024-02-01,101.25,Yahoo Finance",
	}, lines)
}

func Test_forecastCmdInvestmentTypes(t *testing.T) {
	usage := forecastCmd().Flags().Lookup("investment-type").Usage
	require.Contains(t, usage, `"mutual funds"`)
	require.Contains(t, usage, `"real estate"`)
	require.NotContains(t, usage, "mutual-funds")
}
