package analysis

import (
	"errors"
	"fmt"

	"StockSentinel/internal/config"
	"StockSentinel/internal/model"
)

// ErrInvalidSeries marks a malformed or insufficient input series. The
// request cannot be analyzed and the boundary layer should report it as a
// client error.
var ErrInvalidSeries = errors.New("invalid price series")

// validateSeries checks the structural invariants of the input bars:
// enough history for the longest lookback, strictly ascending dates,
// positive prices and non-negative volume.
func validateSeries(series *model.PriceSeries, cfg config.AnalysisConfig) error {
	bars := series.Bars
	if len(bars) < cfg.MinBars {
		return fmt.Errorf("%w: %d bars, need at least %d", ErrInvalidSeries, len(bars), cfg.MinBars)
	}
	for i, b := range bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return fmt.Errorf("%w: non-positive price at bar %d (%s)", ErrInvalidSeries, i, b.Time.Format("2006-01-02"))
		}
		if b.High < b.Low {
			return fmt.Errorf("%w: high below low at bar %d (%s)", ErrInvalidSeries, i, b.Time.Format("2006-01-02"))
		}
		if b.Volume < 0 {
			return fmt.Errorf("%w: negative volume at bar %d (%s)", ErrInvalidSeries, i, b.Time.Format("2006-01-02"))
		}
		if i > 0 && !bars[i-1].Time.Before(b.Time) {
			return fmt.Errorf("%w: dates not strictly ascending at bar %d (%s)", ErrInvalidSeries, i, b.Time.Format("2006-01-02"))
		}
	}
	return nil
}
