package calculator

import "testing"

func TestRSISeries_FirstValueIndex(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi := RSISeries(closes, 14)

	for i := 0; i < 14; i++ {
		if rsi[i] != nil {
			t.Errorf("index %d: expected nil before first full window", i)
		}
	}
	if rsi[14] == nil {
		t.Fatal("expected RSI at index 14")
	}
}

func TestRSISeries_MonotoneUp(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi := RSISeries(closes, 14)
	if got := *rsi[len(rsi)-1]; got != 100 {
		t.Errorf("expected RSI 100 for all-gain series, got %.2f", got)
	}
}

func TestRSISeries_MonotoneDown(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	rsi := RSISeries(closes, 14)
	if got := *rsi[len(rsi)-1]; got != 0 {
		t.Errorf("expected RSI 0 for all-loss series, got %.2f", got)
	}
}

func TestRSISeries_FlatIsNeutral(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100
	}
	rsi := RSISeries(closes, 14)
	if got := *rsi[len(rsi)-1]; got != 50 {
		t.Errorf("expected neutral 50 for flat series, got %.2f", got)
	}
}

func TestRSISeries_Bounded(t *testing.T) {
	closes := []float64{
		100, 102, 101, 105, 103, 108, 107, 110, 106, 111,
		109, 114, 112, 116, 113, 118, 115, 120, 117, 122,
	}
	rsi := RSISeries(closes, 14)
	for i, v := range rsi {
		if v == nil {
			continue
		}
		if *v < 0 || *v > 100 {
			t.Errorf("index %d: RSI %.2f out of [0,100]", i, *v)
		}
	}
}
