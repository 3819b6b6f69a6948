package store

import (
	"time"

	"StockSentinel/internal/model"
)

// BarStore caches fetched daily bar series so repeated requests for the
// same symbol don't hit the upstream data source.
type BarStore interface {
	// Load returns the cached series for a symbol, trimmed to the most
	// recent limit bars. It misses (nil, nil) when the cache is empty,
	// older than maxAge, or was fetched for a shorter coverage than limit.
	Load(symbol string, limit int, maxAge time.Duration) (*model.PriceSeries, error)
	// Save replaces the cached bars for the series' symbol, recording how
	// many trailing days the fetch covered.
	Save(series *model.PriceSeries, coverageDays int) error
	Close() error
}

// NoopStore is used when no SQLite path is configured: every lookup misses.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Load(_ string, _ int, _ time.Duration) (*model.PriceSeries, error) {
	return nil, nil
}
func (n *NoopStore) Save(_ *model.PriceSeries, _ int) error { return nil }
func (n *NoopStore) Close() error { return nil }
