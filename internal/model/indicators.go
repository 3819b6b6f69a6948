package model

// IndicatorSet holds every computed indicator as a series aligned with the
// bar sequence. A nil entry means the indicator's lookback window is not yet
// populated at that index.
type IndicatorSet struct {
	SMA10  []*float64
	SMA20  []*float64
	SMA50  []*float64
	SMA200 []*float64

	RSI []*float64

	MACD       []*float64
	MACDSignal []*float64
	MACDHist   []*float64

	BBUpper    []*float64
	BBMiddle   []*float64
	BBLower    []*float64
	BBPosition []*float64

	ATR []*float64
	CCI []*float64

	StochK []*float64
	StochD []*float64

	WilliamsR []*float64

	Volatility []*float64
}

// IndicatorSnapshot is the final-bar view of the indicator set, with the
// derived classification labels attached.
type IndicatorSnapshot struct {
	RSI        float64 `json:"RSI"`
	RSISignal  string  `json:"RSI_Signal"`
	MACD       float64 `json:"MACD"`
	MACDSignal float64 `json:"MACD_Signal"`
	MACDTrend  string  `json:"MACD_Trend"`
	BBUpper    float64 `json:"BB_Upper"`
	BBLower    float64 `json:"BB_Lower"`
	BBPosition float64 `json:"BB_Position"`
	StochK     float64 `json:"Stoch_K"`
	StochD     float64 `json:"Stoch_D"`
	WilliamsR  float64 `json:"Williams_R"`
	CCI        float64 `json:"CCI"`
	ATR        float64 `json:"ATR"`
	SMA20      float64 `json:"SMA_20"`
	SMA50      float64 `json:"SMA_50"`
	Volatility float64 `json:"Volatility"`
}

// ChartPoint is one bar merged with its aligned indicator values for
// front-end charting. Nil pointers serialize as JSON null.
type ChartPoint struct {
	Date       string   `json:"Date"`
	Open       float64  `json:"Open"`
	High       float64  `json:"High"`
	Low        float64  `json:"Low"`
	Close      float64  `json:"Close"`
	Volume     float64  `json:"Volume"`
	SMA10      *float64 `json:"SMA_10"`
	SMA20      *float64 `json:"SMA_20"`
	SMA50      *float64 `json:"SMA_50"`
	BBUpper    *float64 `json:"BB_Upper"`
	BBLower    *float64 `json:"BB_Lower"`
	RSI        *float64 `json:"RSI"`
	MACD       *float64 `json:"MACD"`
	MACDSignal *float64 `json:"MACD_Signal"`
	MACDHist   *float64 `json:"MACD_Histogram"`
}
