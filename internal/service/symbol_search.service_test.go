package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mintmate/internal/domain"
	"mintmate/internal/repository"
	mock_repository "mintmate/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_symbolSearchServiceHandler_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("short queries return nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewSymbolSearchService(mock_repository.NewMockFinnhubRepository(ctrl), mock_repository.NewMockTwelveDataRepository(ctrl))

		results, err := svc.Search(ctx, " a ", "stocks")
		require.NoError(t, err)
		require.Empty(t, results)
	})

	t.Run("merges and dedupes providers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finnhub := mock_repository.NewMockFinnhubRepository(ctrl)
		twelveData := mock_repository.NewMockTwelveDataRepository(ctrl)

		finnhub.EXPECT().Search(gomock.Any(), "APP").Return([]repository.FinnhubSearchResult{
			{Symbol: "AAPL", Description: "APPLE INC", Type: "Common Stock", PrimaryExchange: "NASDAQ"},
			{Symbol: "APPN"},
		}, nil)
		twelveData.EXPECT().Search(gomock.Any(), "APP").Return([]repository.TwelveDataSearchResult{
			{Symbol: "AAPL", InstrumentName: "Apple Inc", InstrumentType: "Common Stock", Exchange: "NASDAQ"},
			{Symbol: "APPF", InstrumentName: "AppFolio Inc", Exchange: "NASDAQ"},
		}, nil)

		results, err := NewSymbolSearchService(finnhub, twelveData).Search(ctx, "app", "stocks")
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]domain.SymbolMatch{
			{Symbol: "AAPL", Name: "APPLE INC", Type: "Common Stock", Exchange: "NASDAQ", Source: "Finnhub"},
			{Symbol: "APPN", Name: "APPN", Type: "stock", Exchange: "Unknown", Source: "Finnhub"},
			{Symbol: "APPF", Name: "AppFolio Inc", Type: "stock", Exchange: "NASDAQ", Source: "Twelve Data"},
		}, results))
	})

	t.Run("caps each provider and the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finnhub := mock_repository.NewMockFinnhubRepository(ctrl)
		twelveData := mock_repository.NewMockTwelveDataRepository(ctrl)

		finnhubResults := []repository.FinnhubSearchResult{}
		twelveDataResults := []repository.TwelveDataSearchResult{}
		for i := 0; i < 8; i++ {
			finnhubResults = append(finnhubResults, repository.FinnhubSearchResult{Symbol: fmt.Sprintf("F%d", i)})
			twelveDataResults = append(twelveDataResults, repository.TwelveDataSearchResult{Symbol: fmt.Sprintf("T%d", i)})
		}
		finnhub.EXPECT().Search(gomock.Any(), "XX").Return(finnhubResults, nil)
		twelveData.EXPECT().Search(gomock.Any(), "XX").Return(twelveDataResults, nil)

		results, err := NewSymbolSearchService(finnhub, twelveData).Search(ctx, "xx", "stocks")
		require.NoError(t, err)
		require.Len(t, results, 10)
		require.Equal(t, "F4", results[4].Symbol)
		require.Equal(t, "T0", results[5].Symbol)
	})

	t.Run("provider errors contribute nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finnhub := mock_repository.NewMockFinnhubRepository(ctrl)
		finnhub.EXPECT().Search(gomock.Any(), "MSFT").Return(nil, errors.New("timeout"))

		results, err := NewSymbolSearchService(finnhub, nil).Search(ctx, "msft", "stocks")
		require.NoError(t, err)
		require.Empty(t, results)
	})

	t.Run("crypto matches the local table first", func(t *testing.T) {
		results, err := NewSymbolSearchService(nil, nil).Search(ctx, "bit", "crypto")
		require.NoError(t, err)
		require.Equal(t, []string{"BTCUSDT", "BCHUSDT"}, []string{results[0].Symbol, results[1].Symbol})
		require.Equal(t, "crypto", results[0].Type)
	})
}
