package collector

import (
	"fmt"
	"log"
	"time"

	"StockSentinel/internal/model"
	"StockSentinel/internal/store"
)

// Collector serves daily bar series, consulting the cache before the
// upstream fetcher.
type Collector struct {
	Fetcher Fetcher
	Store   store.BarStore
	TTL     time.Duration
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, barStore store.BarStore, ttl time.Duration) *Collector {
	return &Collector{Fetcher: fetcher, Store: barStore, TTL: ttl}
}

// GetSeries returns the daily bars for a symbol over the requested period
// (1mo/3mo/6mo/1y/2y), from the cache when fresh enough.
func (c *Collector) GetSeries(symbol, period string) (*model.PriceSeries, error) {
	days, err := PeriodDays(period)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadPeriod, period)
	}

	if cached, err := c.Store.Load(symbol, days, c.TTL); err != nil {
		log.Printf("[WARN] bar cache load for %s: %v", symbol, err)
	} else if cached != nil {
		return cached, nil
	}

	bars, err := c.Fetcher.FetchDailyBars(symbol, days)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	series := &model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}

	if err := c.Store.Save(series, days); err != nil {
		log.Printf("[WARN] bar cache save for %s: %v", symbol, err)
	}
	return series, nil
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.OHLCV
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		if len(m.Bars) > days {
			return m.Bars[len(m.Bars)-days:], nil
		}
		return m.Bars, nil
	}
	return GenerateBars(m.Price, days), nil
}

// GenerateBars builds a deterministic synthetic daily series drifting
// around a base price, ending today.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   now.AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
