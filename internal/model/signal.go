package model

import "time"

// SignalType indicates the direction of a trading signal.
type SignalType string

const (
	SignalBuy  SignalType = "BUY"
	SignalSell SignalType = "SELL"
	SignalHold SignalType = "HOLD"
)

// SignalStrength is the categorical magnitude of the underlying score.
type SignalStrength string

const (
	StrengthStrong   SignalStrength = "STRONG"
	StrengthModerate SignalStrength = "MODERATE"
	StrengthWeak     SignalStrength = "WEAK"
)

// TrendLabel classifies the direction of one trend horizon.
type TrendLabel string

const (
	TrendBullish TrendLabel = "Bullish"
	TrendBearish TrendLabel = "Bearish"
	TrendNeutral TrendLabel = "Neutral"
)

// TrendState holds the directional label for each horizon.
type TrendState struct {
	ShortTerm  TrendLabel `json:"short_term"`
	MediumTerm TrendLabel `json:"medium_term"`
	LongTerm   TrendLabel `json:"long_term"`
}

// Signal is one deterministic evaluation of the rule set at a single bar.
// Confidence is the canonical continuous representation in (0,1]; the
// discrete label is derived from it for display only.
type Signal struct {
	Date       time.Time      `json:"date"`
	Type       SignalType     `json:"type"`
	Strength   SignalStrength `json:"strength"`
	Price      float64        `json:"price"`
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Reasons    []string       `json:"reasons"`
}

// ConfidenceLabel buckets the continuous confidence for display.
func (s *Signal) ConfidenceLabel() string {
	switch {
	case s.Confidence >= 0.7:
		return "High"
	case s.Confidence >= 0.4:
		return "Medium"
	default:
		return "Low"
	}
}
