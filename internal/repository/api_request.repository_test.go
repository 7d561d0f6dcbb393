package repository

import (
	"testing"
	"time"

	"mintmate/internal/db/models/postgres/public/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func Test_apiRequestQueries(t *testing.T) {
	requestID := uuid.MustParse("7b0f0c55-1d65-4c1e-9c43-0b54a6d0a111")

	t.Run("insert", func(t *testing.T) {
		sql := insertApiRequestQuery(model.APIRequest{
			RequestID:   requestID,
			Method:      "POST",
			Route:       "/api/investment/historical-data",
			RequestBody: strPtr(`{"symbol":"AAPL"}`),
			StartTs:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}).DebugSql()

		require.Contains(t, sql, "INSERT INTO public.api_request")
		require.Contains(t, sql, "'/api/investment/historical-data'")
		require.Contains(t, sql, requestID.String())
		require.Contains(t, sql, "RETURNING")
	})

	t.Run("update", func(t *testing.T) {
		durationMs := int64(42)
		statusCode := int32(200)
		sql := updateApiRequestQuery(model.APIRequest{
			RequestID:  requestID,
			DurationMs: &durationMs,
			StatusCode: &statusCode,
			DataSource: strPtr("Yahoo Finance"),
		}).DebugSql()

		require.Contains(t, sql, "UPDATE public.api_request")
		require.Contains(t, sql, "duration_ms")
		require.Contains(t, sql, "42")
		require.Contains(t, sql, "'Yahoo Finance'")
		require.Contains(t, sql, requestID.String())
	})
}

func TestNoopApiRequestRepository(t *testing.T) {
	repo := NewNoopApiRequestRepository()
	out, err := repo.Add(nil, model.APIRequest{})
	require.NoError(t, err)
	require.Nil(t, out)
	require.NoError(t, repo.Update(nil, model.APIRequest{}))
}
