package eventmodels

import "fmt"

// SignalSeries holds one directional trading intent per bar, aligned by
// index with the bar series it was generated from. Values are in [-1, 1]:
// positive is buy pressure, negative is sell pressure, zero is flat.
type SignalSeries []float64

func (signals SignalSeries) Validate(barCount int) error {
	if len(signals) != barCount {
		return fmt.Errorf("SignalSeries.Validate: %d signals for %d bars: %w", len(signals), barCount, ErrSeriesLengthMismatch)
	}

	for i, s := range signals {
		if s < -1 || s > 1 {
			return fmt.Errorf("SignalSeries.Validate: signal %d out of range: %v: %w", i, s, ErrSignalOutOfRange)
		}
	}

	return nil
}

func (signals SignalSeries) Copy() SignalSeries {
	out := make(SignalSeries, len(signals))
	copy(out, signals)
	return out
}
