package model

import "time"

// ReplacementLine is one row of the replacement cost forecast: an asset
// nearing end of life, a freshly sampled replacement cost, and the date
// it should be replaced by (RUL months at 30 days per month).
type ReplacementLine struct {
	Asset     Asset     `json:"asset"`
	CostUSD   int64     `json:"cost_usd"`
	ReplaceBy time.Time `json:"replace_by"`
}

// ReplacementForecast aggregates replacement lines for the cost panel
type ReplacementForecast struct {
	Lines    []ReplacementLine `json:"lines"`
	TotalUSD int64             `json:"total_usd"`
}
