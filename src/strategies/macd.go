package strategies

import (
	"fmt"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
	"github.com/ymiyamoto5/backtester/src/indicators"
)

// MACDStrategy signals long while the MACD line is above its signal line
// and short while below.
type MACDStrategy struct {
	FastPeriod   int
	SlowPeriod   int
	SignalPeriod int
}

func NewMACDStrategy(fastPeriod, slowPeriod, signalPeriod int) *MACDStrategy {
	if fastPeriod <= 0 {
		fastPeriod = 12
	}

	if slowPeriod <= 0 {
		slowPeriod = 26
	}

	if signalPeriod <= 0 {
		signalPeriod = 9
	}

	return &MACDStrategy{FastPeriod: fastPeriod, SlowPeriod: slowPeriod, SignalPeriod: signalPeriod}
}

func (s *MACDStrategy) Name() string {
	return fmt.Sprintf("macd_%d_%d_%d", s.FastPeriod, s.SlowPeriod, s.SignalPeriod)
}

func (s *MACDStrategy) GenerateSignals(bars eventmodels.BarSeries) (eventmodels.SignalSeries, error) {
	if err := bars.Validate(); err != nil {
		return nil, fmt.Errorf("MACDStrategy.GenerateSignals: %w", err)
	}

	macd := indicators.NewMACD(s.FastPeriod, s.SlowPeriod, s.SignalPeriod)

	signals := make(eventmodels.SignalSeries, len(bars))
	for i, bar := range bars {
		ready, stats := macd.Update(bar.Close)
		if !ready {
			continue
		}

		if stats.Histogram > 0 {
			signals[i] = 1
		} else if stats.Histogram < 0 {
			signals[i] = -1
		}
	}

	return signals, nil
}
