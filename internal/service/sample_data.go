package service

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"mintmate/internal/domain"
	"mintmate/internal/util"

	"github.com/shopspring/decimal"
)

const SampleDataNote = "Sample data (API unavailable) - This is simulated data for demonstration purposes"

const defaultBasePrice = 100.0

var basePrices = map[string]float64{
	"AAPL":    175,
	"MSFT":    350,
	"GOOGL":   2800,
	"GOOG":    2800,
	"TSLA":    250,
	"AMZN":    150,
	"META":    300,
	"NVDA":    500,
	"NFLX":    400,
	"BRK.A":   500000,
	"JNJ":     150,
	"V":       250,
	"JPM":     150,
	"PG":      150,
	"UNH":     500,
	"HD":      300,
	"MA":      400,
	"BTCUSDT": 45000,
	"ETHUSDT": 3000,
}

type SampleDataGenerator interface {
	Generate(symbol string, duration int) *domain.HistoricalSeries
}

type sampleDataGeneratorHandler struct {
	mu  sync.Mutex
	Rng *rand.Rand
	Now func() time.Time
}

func NewSampleDataGenerator(rng *rand.Rand, now func() time.Time) SampleDataGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	return &sampleDataGeneratorHandler{
		Rng: rng,
		Now: now,
	}
}

// Generate walks a random monthly price path from the symbol's base price.
// Points are dated the first of each month, oldest first, ending in the
// current month. Metrics are left to the caller.
func (h *sampleDataGeneratorHandler) Generate(symbol string, duration int) *domain.HistoricalSeries {
	h.mu.Lock()
	defer h.mu.Unlock()

	months := duration
	if months > domain.MaxDataPoints {
		months = domain.MaxDataPoints
	}
	if months < 0 {
		months = 0
	}

	price, ok := basePrices[symbol]
	if !ok {
		price = defaultBasePrice
	}

	now := h.Now().UTC()
	data := make([]domain.PricePoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		date := util.MonthStart(now, i)

		trend := (h.Rng.Float64() - 0.48) * 0.01
		price = math.Max(price*(1+trend), 1)

		closePrice := price
		openPrice := price * (1 + (h.Rng.Float64()-0.5)*0.01)
		highPrice := math.Max(openPrice, closePrice) * 1.005
		lowPrice := math.Min(openPrice, closePrice) * 0.995
		volume := float64(h.Rng.Intn(100000) + 10000)

		data = append(data, domain.PricePoint{
			Date:   util.FormatDate(date),
			Open:   domain.Float64Pointer(roundCents(openPrice)),
			High:   domain.Float64Pointer(roundCents(highPrice)),
			Low:    domain.Float64Pointer(roundCents(lowPrice)),
			Close:  roundCents(closePrice),
			Volume: domain.Float64Pointer(volume),
		})
	}

	return &domain.HistoricalSeries{
		Symbol: symbol,
		Data:   data,
		Source: domain.SourceSample,
		Note:   SampleDataNote,
	}
}

func roundCents(f float64) float64 {
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
