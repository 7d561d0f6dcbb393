package service

import (
	"math/rand"
	"testing"
	"time"

	"mintmate/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestSampleDataGenerator_Generate(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 6, 17, 10, 0, 0, 0, time.UTC) }

	t.Run("monthly points ending this month", func(t *testing.T) {
		gen := NewSampleDataGenerator(rand.New(rand.NewSource(1)), now)
		series := gen.Generate("AAPL", 3)

		require.Equal(t, "AAPL", series.Symbol)
		require.Equal(t, domain.SourceSample, series.Source)
		require.Equal(t, SampleDataNote, series.Note)
		require.Equal(t, []string{"2024-04-01", "2024-05-01", "2024-06-01"}, series.Dates())
	})

	t.Run("caps at twelve points and crosses years", func(t *testing.T) {
		gen := NewSampleDataGenerator(rand.New(rand.NewSource(2)), now)
		series := gen.Generate("MSFT", 24)

		require.Len(t, series.Data, 12)
		require.Equal(t, "2023-07-01", series.Data[0].Date)
		require.Equal(t, "2024-06-01", series.Data[11].Date)
	})

	t.Run("prices stay near the base price and are well formed", func(t *testing.T) {
		gen := NewSampleDataGenerator(rand.New(rand.NewSource(3)), now)
		series := gen.Generate("AAPL", 12)

		for _, p := range series.Data {
			// at most 12 steps of under 0.52% each
			require.InDelta(t, 175, p.Close, 175*0.07)
			require.GreaterOrEqual(t, *p.High, p.Close)
			require.GreaterOrEqual(t, *p.High, *p.Open)
			require.LessOrEqual(t, *p.Low, p.Close)
			require.LessOrEqual(t, *p.Low, *p.Open)
			require.GreaterOrEqual(t, *p.Volume, 10000.0)
			require.Less(t, *p.Volume, 110000.0)
			require.Equal(t, roundCents(p.Close), p.Close)
		}
	})

	t.Run("unknown symbol starts at 100", func(t *testing.T) {
		gen := NewSampleDataGenerator(rand.New(rand.NewSource(4)), now)
		series := gen.Generate("ZZZZ", 1)

		require.Len(t, series.Data, 1)
		require.InDelta(t, 100, series.Data[0].Close, 1)
	})

	t.Run("price never drops below one", func(t *testing.T) {
		basePrices["PENNY"] = 1
		defer delete(basePrices, "PENNY")

		gen := NewSampleDataGenerator(rand.New(rand.NewSource(5)), now)
		series := gen.Generate("PENNY", 12)
		for _, p := range series.Data {
			require.GreaterOrEqual(t, p.Close, 1.0)
		}
	})
}
