package eventmodels

import (
	"fmt"
	"time"
)

// Bar is a single OHLCV observation for a fixed time interval.
type Bar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// IsTradable reports whether the bar carries usable prices. Bars with a
// non-positive open or close are treated as no-liquidity bars.
func (b Bar) IsTradable() bool {
	return b.Open > 0 && b.Close > 0
}

func (b Bar) DailyReturn(prev Bar) float64 {
	if prev.Close == 0 {
		return 0
	}

	return b.Close/prev.Close - 1
}

// BarSeries is an ordered series of bars, strictly increasing in timestamp.
type BarSeries []Bar

func (bars BarSeries) Validate() error {
	if len(bars) == 0 {
		return ErrEmptyBarSeries
	}

	for i := 1; i < len(bars); i++ {
		if !bars[i].Timestamp.After(bars[i-1].Timestamp) {
			return fmt.Errorf("BarSeries.Validate: bar %d (%v) does not advance past bar %d (%v): %w", i, bars[i].Timestamp, i-1, bars[i-1].Timestamp, ErrNonMonotonicTimestamps)
		}
	}

	return nil
}

func (bars BarSeries) Closes() []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	return closes
}
