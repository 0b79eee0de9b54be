package model

import "github.com/shopspring/decimal"

// Trade is a closed trade result shown as a pill.
type Trade struct {
	Ticker string `json:"ticker"`

	// ReturnPct is the realised return in percent (12.5 means +12.5%).
	ReturnPct decimal.Decimal `json:"return_pct"`

	// Win is supplied by the caller; it is not derived from ReturnPct
	// because break-even trades are classified upstream.
	Win bool `json:"win"`
}
