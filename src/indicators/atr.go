package indicators

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
)

// ATR is the average true range over a rolling window: a simple mean of the
// per-bar true range, matching a rolling-mean ATR rather than Wilder
// smoothing.
type ATR struct {
	Period     int
	trueRanges []float64
	prevClose  float64
	hasPrev    bool
}

func NewATR(period int) *ATR {
	return &ATR{Period: period}
}

func (a *ATR) Update(bar eventmodels.Bar) (bool, float64, error) {
	tr := bar.High - bar.Low
	if a.hasPrev {
		tr = math.Max(tr, math.Abs(bar.High-a.prevClose))
		tr = math.Max(tr, math.Abs(bar.Low-a.prevClose))
	}

	a.prevClose = bar.Close
	a.hasPrev = true

	if len(a.trueRanges) < a.Period {
		a.trueRanges = append(a.trueRanges, tr)
	} else {
		a.trueRanges = append(a.trueRanges[1:], tr)
	}

	if len(a.trueRanges) < a.Period {
		return false, 0, nil
	}

	mean, err := stats.Mean(a.trueRanges)
	if err != nil {
		return false, 0, fmt.Errorf("ATR.Update: failed to calculate mean: %v", err)
	}

	return true, mean, nil
}
