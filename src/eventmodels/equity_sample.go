package eventmodels

import "time"

// EquitySample is one point of the equity curve: total account value
// (cash plus mark-to-market position value) at a bar's close.
type EquitySample struct {
	Timestamp time.Time `json:"timestamp" csv:"timestamp"`
	Equity    float64   `json:"equity" csv:"equity"`
}
