package analysis

import (
	"testing"

	"StockSentinel/internal/model"
)

func TestClassifyHorizon(t *testing.T) {
	// Rising closes well above the MA with positive momentum.
	rising := []float64{100, 102, 104, 106, 108, 110, 112, 114, 116, 118, 120}
	if got := classifyHorizon(rising, fp(110), 5, len(rising)-1, 0.5); got != model.TrendBullish {
		t.Errorf("expected Bullish, got %s", got)
	}

	// Falling closes below the MA with negative momentum.
	falling := []float64{120, 118, 116, 114, 112, 110, 108, 106, 104, 102, 100}
	if got := classifyHorizon(falling, fp(110), 5, len(falling)-1, 0.5); got != model.TrendBearish {
		t.Errorf("expected Bearish, got %s", got)
	}

	// Close inside the margin band is neutral regardless of momentum.
	if got := classifyHorizon(rising, fp(120), 5, len(rising)-1, 0.5); got != model.TrendNeutral {
		t.Errorf("expected Neutral inside margin band, got %s", got)
	}

	// Price above the MA but with negative momentum is neutral, not bullish.
	pullback := []float64{100, 120, 140, 139, 138, 137, 136, 135, 134, 133, 132}
	if got := classifyHorizon(pullback, fp(120), 5, len(pullback)-1, 0.5); got != model.TrendNeutral {
		t.Errorf("expected Neutral on disagreement, got %s", got)
	}

	// Unpopulated MA is neutral.
	if got := classifyHorizon(rising, nil, 5, len(rising)-1, 0.5); got != model.TrendNeutral {
		t.Errorf("expected Neutral for nil MA, got %s", got)
	}

	// Momentum window longer than the history is neutral.
	if got := classifyHorizon(rising[:3], fp(90), 5, 2, 0.5); got != model.TrendNeutral {
		t.Errorf("expected Neutral for short history, got %s", got)
	}
}
