// Package indicators provides incremental technical indicators. Each
// indicator is updated one bar at a time and reports readiness once its
// window is full, so callers never see partially warmed values.
package indicators

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

type SMA struct {
	Period int
	values []float64
}

func NewSMA(period int) *SMA {
	return &SMA{Period: period}
}

// Update pushes the next value into the window. The boolean is false until
// Period values have been seen.
func (s *SMA) Update(value float64) (bool, float64, error) {
	if len(s.values) < s.Period {
		s.values = append(s.values, value)
	} else {
		s.values = append(s.values[1:], value)
	}

	if len(s.values) < s.Period {
		return false, 0, nil
	}

	mean, err := stats.Mean(s.values)
	if err != nil {
		return false, 0, fmt.Errorf("SMA.Update: failed to calculate mean: %v", err)
	}

	return true, mean, nil
}
