package collector

import (
	"errors"

	"StockSentinel/internal/model"
)

// ErrNoData means the upstream source has no series for the symbol.
var ErrNoData = errors.New("no data for symbol")

// ErrBadPeriod means the requested period string is not supported.
var ErrBadPeriod = errors.New("unsupported period")

// Fetcher defines the interface for fetching daily market data.
type Fetcher interface {
	// FetchDailyBars returns up to days daily bars for the symbol in
	// ascending date order.
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}

// periodDays maps the supported period strings to trading-day counts.
var periodDays = map[string]int{
	"1mo": 22,
	"3mo": 66,
	"6mo": 126,
	"1y":  252,
	"2y":  504,
}

// PeriodDays resolves a period string to a trading-day count.
func PeriodDays(period string) (int, error) {
	days, ok := periodDays[period]
	if !ok {
		return 0, ErrBadPeriod
	}
	return days, nil
}
