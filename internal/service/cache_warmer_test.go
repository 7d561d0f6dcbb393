package service

import (
	"context"
	"testing"

	"mintmate/internal/domain"
	mock_service "mintmate/internal/service/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCacheWarmer(t *testing.T) {
	t.Run("builds strict queries for the watch-list", func(t *testing.T) {
		w := NewCacheWarmer(nil, []string{"AAPL"}, []string{"BTC"})
		require.Equal(t, []domain.HistoricalQuery{
			{Symbol: "AAPL", Type: "stocks", Interval: "monthly", Duration: 10, Strict: true},
			{Symbol: "AAPL", Type: "stocks", Interval: "monthly", Duration: 12, Strict: true},
			{Symbol: "BTC", Type: "crypto", Interval: "monthly", Duration: 10, Strict: true},
			{Symbol: "BTC", Type: "crypto", Interval: "monthly", Duration: 12, Strict: true},
		}, w.Queries)
	})

	t.Run("warm now counts successes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_service.NewMockHistoricalDataService(ctrl)
		w := NewCacheWarmer(svc, []string{"AAPL", "NOPE"}, nil)

		svc.EXPECT().GetHistoricalData(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q domain.HistoricalQuery) (*domain.HistoricalSeries, error) {
				if q.Symbol == "NOPE" {
					return nil, domain.ErrNoData
				}
				return &domain.HistoricalSeries{Symbol: q.Symbol, Source: domain.SourceYahoo}, nil
			},
		).Times(4)

		require.Equal(t, 2, w.WarmNow(context.Background()))
	})

	t.Run("rejects bad schedules", func(t *testing.T) {
		w := NewCacheWarmer(nil, nil, nil)
		require.Error(t, w.Register("not a cron"))
		require.NoError(t, w.Register("0 */5 * * * *"))
	})
}
