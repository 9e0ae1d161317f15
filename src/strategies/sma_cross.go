package strategies

import (
	"fmt"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
	"github.com/ymiyamoto5/backtester/src/indicators"
)

// SMACross signals long while the short moving average is above the long
// one and short while below. Bars inside either warmup window are flat.
type SMACross struct {
	ShortWindow int
	LongWindow  int
}

func NewSMACross(shortWindow, longWindow int) *SMACross {
	if shortWindow <= 0 {
		shortWindow = 5
	}

	if longWindow <= 0 {
		longWindow = 20
	}

	return &SMACross{ShortWindow: shortWindow, LongWindow: longWindow}
}

func (s *SMACross) Name() string {
	return fmt.Sprintf("sma_cross_%d_%d", s.ShortWindow, s.LongWindow)
}

func (s *SMACross) GenerateSignals(bars eventmodels.BarSeries) (eventmodels.SignalSeries, error) {
	if err := bars.Validate(); err != nil {
		return nil, fmt.Errorf("SMACross.GenerateSignals: %w", err)
	}

	shortMA := indicators.NewSMA(s.ShortWindow)
	longMA := indicators.NewSMA(s.LongWindow)

	signals := make(eventmodels.SignalSeries, len(bars))
	for i, bar := range bars {
		shortReady, shortValue, err := shortMA.Update(bar.Close)
		if err != nil {
			return nil, fmt.Errorf("SMACross.GenerateSignals: bar %d: %w", i, err)
		}

		longReady, longValue, err := longMA.Update(bar.Close)
		if err != nil {
			return nil, fmt.Errorf("SMACross.GenerateSignals: bar %d: %w", i, err)
		}

		if !shortReady || !longReady {
			continue
		}

		if shortValue > longValue {
			signals[i] = 1
		} else if shortValue < longValue {
			signals[i] = -1
		}
	}

	return signals, nil
}
