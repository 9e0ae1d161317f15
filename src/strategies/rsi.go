package strategies

import (
	"fmt"

	"github.com/ymiyamoto5/backtester/src/eventmodels"
	"github.com/ymiyamoto5/backtester/src/indicators"
)

// RSIStrategy signals long when RSI falls below the oversold bound and
// short when it rises above the overbought bound.
type RSIStrategy struct {
	Period     int
	Overbought float64
	Oversold   float64
}

func NewRSIStrategy(period int, overbought, oversold float64) *RSIStrategy {
	if period <= 0 {
		period = 14
	}

	if overbought <= 0 {
		overbought = 70
	}

	if oversold <= 0 {
		oversold = 30
	}

	return &RSIStrategy{Period: period, Overbought: overbought, Oversold: oversold}
}

func (s *RSIStrategy) Name() string {
	return fmt.Sprintf("rsi_%d_%g_%g", s.Period, s.Oversold, s.Overbought)
}

func (s *RSIStrategy) GenerateSignals(bars eventmodels.BarSeries) (eventmodels.SignalSeries, error) {
	if err := bars.Validate(); err != nil {
		return nil, fmt.Errorf("RSIStrategy.GenerateSignals: %w", err)
	}

	rsi := indicators.NewRSI(s.Period)

	signals := make(eventmodels.SignalSeries, len(bars))
	for i, bar := range bars {
		ready, value, err := rsi.Update(bar.Close)
		if err != nil {
			return nil, fmt.Errorf("RSIStrategy.GenerateSignals: bar %d: %w", i, err)
		}

		if !ready {
			continue
		}

		if value < s.Oversold {
			signals[i] = 1
		} else if value > s.Overbought {
			signals[i] = -1
		}
	}

	return signals, nil
}
