package indicators

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// RSI is the relative strength index computed from simple rolling means of
// gains and losses.
type RSI struct {
	Period    int
	gains     []float64
	losses    []float64
	prevClose float64
	hasPrev   bool
}

func NewRSI(period int) *RSI {
	return &RSI{Period: period}
}

func (r *RSI) Update(close float64) (bool, float64, error) {
	if !r.hasPrev {
		r.prevClose = close
		r.hasPrev = true
		return false, 0, nil
	}

	change := close - r.prevClose
	r.prevClose = close

	gain, loss := 0.0, 0.0
	if change > 0 {
		gain = change
	} else {
		loss = -change
	}

	if len(r.gains) < r.Period {
		r.gains = append(r.gains, gain)
		r.losses = append(r.losses, loss)
	} else {
		r.gains = append(r.gains[1:], gain)
		r.losses = append(r.losses[1:], loss)
	}

	if len(r.gains) < r.Period {
		return false, 0, nil
	}

	avgGain, err := stats.Mean(r.gains)
	if err != nil {
		return false, 0, fmt.Errorf("RSI.Update: failed to calculate mean gain: %v", err)
	}

	avgLoss, err := stats.Mean(r.losses)
	if err != nil {
		return false, 0, fmt.Errorf("RSI.Update: failed to calculate mean loss: %v", err)
	}

	if avgLoss == 0 {
		return true, 100, nil
	}

	rs := avgGain / avgLoss
	return true, 100 - (100 / (1 + rs)), nil
}
