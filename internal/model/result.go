package model

// SupportResistance holds the derived price levels at the final bar.
type SupportResistance struct {
	Support    float64 `json:"support"`
	Resistance float64 `json:"resistance"`
	BBUpper    float64 `json:"bb_upper"`
	BBLower    float64 `json:"bb_lower"`
}

// RiskMetrics holds the risk-management profile derived from the closing
// prices and the latest signal's direction.
type RiskMetrics struct {
	StopLoss        float64 `json:"stop_loss"`
	TakeProfit      float64 `json:"take_profit"`
	RiskRewardRatio float64 `json:"risk_reward_ratio"`
	PositionSize    float64 `json:"position_size"`
	MaxDrawdown     float64 `json:"max_drawdown"`
	Volatility      float64 `json:"volatility"`
}

// DateRange is the first and last bar date of the analyzed series.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PriceRange summarizes the price extremes of the analyzed series.
type PriceRange struct {
	High    float64 `json:"high"`
	Low     float64 `json:"low"`
	Current float64 `json:"current"`
}

// DataSummary describes the input series the analysis was computed from.
type DataSummary struct {
	TotalRecords int        `json:"total_records"`
	DateRange    DateRange  `json:"date_range"`
	PriceRange   PriceRange `json:"price_range"`
}

// AnalysisResult is the full output of one analysis request.
type AnalysisResult struct {
	Symbol              string            `json:"symbol"`
	Date                string            `json:"date"`
	CurrentPrice        float64           `json:"current_price"`
	TechnicalIndicators IndicatorSnapshot `json:"technical_indicators"`
	TrendAnalysis       TrendState        `json:"trend_analysis"`
	LatestSignal        *Signal           `json:"latest_signal"`
	SignalHistory       []Signal          `json:"signal_history"`
	SupportResistance   SupportResistance `json:"support_resistance"`
	RiskManagement      RiskMetrics       `json:"risk_management"`
	DataSummary         DataSummary       `json:"data_summary"`
}
